package stats_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/stats"
)

func newTestServer(t *testing.T, records ...session.Record) http.Handler {
	t.Helper()

	gin.SetMode(gin.TestMode)

	srv := stats.NewServer(
		seed(t, records...),
		func() time.Time { return now },
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	return rec.Code, rec.Body.Bytes()
}

func TestServerStats(t *testing.T) {
	h := newTestServer(t, rec(session.Coding, now.Add(-time.Hour), 25, 1))

	status, body := get(t, h, "/api/stats")
	require.Equal(t, http.StatusOK, status)

	var st stats.Stats

	require.NoError(t, json.Unmarshal(body, &st))
	assert.Equal(t, 25, st.Summary.TodayTotalMinutes)
	assert.Len(t, st.Days, stats.RecentDays)
	require.Len(t, st.Sessions, 1)
	assert.Equal(t, session.Coding, st.Sessions[0].Category)
}

func TestServerSummary(t *testing.T) {
	h := newTestServer(t,
		rec(session.Coding, now.Add(-time.Hour), 25, 1),
		rec(session.Break, now.AddDate(0, 0, -2), 5, 0),
	)

	status, body := get(t, h, "/api/summary")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"todayTotal":25,"allTimeTotal":30,"totalDistractions":1}`, string(body))
}

func TestServerSessions(t *testing.T) {
	h := newTestServer(t,
		rec(session.Coding, now.Add(-time.Hour), 25, 1),
		rec(session.Break, now.AddDate(0, 0, -10), 5, 0),
	)

	var resp struct {
		Sessions []session.Record `json:"sessions"`
	}

	status, body := get(t, h, "/api/sessions")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Sessions, 2)

	status, body = get(t, h, "/api/sessions?since=2025-03-10")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, session.Coding, resp.Sessions[0].Category)

	status, _ = get(t, h, "/api/sessions?since=not+a+date+at+all")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServerEmptySessions(t *testing.T) {
	status, body := get(t, newTestServer(t), "/api/sessions")

	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"sessions":[]}`, string(body))
}

func TestServerHealth(t *testing.T) {
	status, body := get(t, newTestServer(t), "/health")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
