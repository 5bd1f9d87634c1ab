package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focustrack/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "duration must be between %d and %d minutes",
}

var errOther = &apperr.Error{
	Message: "something else",
}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt(1, 120)

	assert.Equal(t, "duration must be between 1 and 120 minutes", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, errOther)
}

func TestWrap(t *testing.T) {
	err := errOther.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "something else: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, errOther)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.True(t, errors.Is(err.Fmt(), errOther))
}
