package config

import "github.com/ayoisaiah/focustrack/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "timer duration must be between %d and %d minutes, got %d",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration %q: %v",
	}

	errUnknownCategory = &apperr.Error{
		Message: "unknown category %q (must be one of %s)",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver %q (must be bolt or sqlite)",
	}

	errInvalidPort = &apperr.Error{
		Message: "stats port must be between 1 and 65535, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q (must be debug, info, warn or error)",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid since time",
	}
)
