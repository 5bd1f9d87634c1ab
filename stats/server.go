package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/timeutil"
	"github.com/ayoisaiah/focustrack/store"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the report over HTTP as JSON.
type Server struct {
	db     store.DB
	now    func() time.Time
	logger *slog.Logger
}

// NewServer returns a server reading from db. If now is nil, time.Now is
// used.
func NewServer(db store.DB, now func() time.Time, logger *slog.Logger) *Server {
	if now == nil {
		now = time.Now
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		db:     db,
		now:    now,
		logger: logger,
	}
}

// Handler returns the gin engine serving the API.
func (s *Server) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.GET("/stats", s.getStats)
	api.GET("/summary", s.getSummary)
	api.GET("/sessions", s.getSessions)

	return engine
}

// ListenAndServe serves the API on port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.InfoContext(ctx, "stats server started", slog.Uint64("port", uint64(port)))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		s.logger.Debug(
			"stats request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
	})
}

func (s *Server) getStats(c *gin.Context) {
	st, err := Compute(c.Request.Context(), s.db, s.now())
	if err != nil {
		s.logger.Error("computing stats", slog.Any("error", err))
		writeError(c, http.StatusInternalServerError, "store_error", err)

		return
	}

	c.JSON(http.StatusOK, st)
}

func (s *Server) getSummary(c *gin.Context) {
	agg, err := s.db.QueryAggregate(c.Request.Context(), s.now())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "store_error", err)
		return
	}

	c.JSON(http.StatusOK, agg)
}

func (s *Server) getSessions(c *gin.Context) {
	var (
		records []session.Record
		err     error
	)

	ctx := c.Request.Context()

	if since := c.Query("since"); since != "" {
		t, parseErr := timeutil.FromStr(since, s.now())
		if parseErr != nil {
			writeError(c, http.StatusBadRequest, "invalid_since", parseErr)
			return
		}

		records, err = s.db.QueryRecent(ctx, t)
	} else {
		records, err = s.db.QueryAll(ctx)
	}

	if err != nil {
		writeError(c, http.StatusInternalServerError, "store_error", err)
		return
	}

	if records == nil {
		records = []session.Record{}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": records})
}
