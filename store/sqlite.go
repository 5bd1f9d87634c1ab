package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/timeutil"
)

const selectSessions = `SELECT id, category, start_time, end_time,
	duration_minutes, distraction_count, created_at
	FROM focus_sessions`

// SQLiteClient stores records in the focus_sessions table. Instants are
// stored as ISO-8601 UTC strings with millisecond precision, so string
// comparison orders them chronologically.
type SQLiteClient struct {
	db     *sql.DB
	closed atomic.Bool
}

// NewSQLiteClient opens the database at path and applies pending migrations.
func NewSQLiteClient(path string) (*SQLiteClient, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=8000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, storeErr("open sqlite", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(30 * time.Second)

	ctx := context.Background()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storeErr("ping sqlite", err)
	}

	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, storeErr("load migrations", err)
	}

	if err = runMigrations(ctx, db, sub); err != nil {
		_ = db.Close()
		return nil, storeErr("migrate", err)
	}

	return &SQLiteClient{db: db}, nil
}

func (c *SQLiteClient) ready() error {
	if c == nil || c.db == nil || c.closed.Load() {
		return ErrNotInitialized
	}

	return nil
}

func (c *SQLiteClient) Append(ctx context.Context, rec session.Record) (int64, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}

	res, err := c.db.ExecContext(
		ctx,
		`INSERT INTO focus_sessions
		(category, start_time, end_time, duration_minutes, distraction_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(rec.Category),
		session.FormatInstant(rec.StartTime),
		session.FormatInstant(rec.EndTime),
		rec.DurationMinutes,
		rec.DistractionCount,
		session.FormatInstant(rec.CreatedAt),
	)
	if err != nil {
		return 0, storeErr("insert session", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("insert session", err)
	}

	return id, nil
}

func (c *SQLiteClient) query(
	ctx context.Context,
	query string,
	args ...any,
) ([]session.Record, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("query sessions", err)
	}
	defer rows.Close()

	var records []session.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, storeErr("scan session", err)
		}

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("query sessions", err)
	}

	return records, nil
}

func scanRecord(rows *sql.Rows) (session.Record, error) {
	var (
		rec                  session.Record
		category             string
		startTime, createdAt string
		endTime              sql.NullString
		distractions         sql.NullInt64
	)

	err := rows.Scan(
		&rec.ID,
		&category,
		&startTime,
		&endTime,
		&rec.DurationMinutes,
		&distractions,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}

	rec.Category = session.Category(category)
	rec.DistractionCount = int(distractions.Int64)

	if rec.StartTime, err = session.ParseInstant(startTime); err != nil {
		return rec, err
	}

	if rec.EndTime, err = session.ParseInstant(endTime.String); err != nil {
		return rec, err
	}

	if rec.CreatedAt, err = session.ParseInstant(createdAt); err != nil {
		return rec, err
	}

	return rec, nil
}

func (c *SQLiteClient) QueryAll(ctx context.Context) ([]session.Record, error) {
	return c.query(ctx, selectSessions+` ORDER BY created_at DESC, id DESC`)
}

func (c *SQLiteClient) QueryRecent(
	ctx context.Context,
	since time.Time,
) ([]session.Record, error) {
	return c.query(
		ctx,
		selectSessions+` WHERE created_at >= ? ORDER BY created_at DESC, id DESC`,
		session.FormatInstant(since),
	)
}

func (c *SQLiteClient) QueryAggregate(
	ctx context.Context,
	now time.Time,
) (session.Aggregate, error) {
	if err := c.ready(); err != nil {
		return session.Aggregate{}, err
	}

	var today, allTime, distractions sql.NullInt64

	err := c.db.QueryRowContext(
		ctx,
		`SELECT
			SUM(CASE WHEN created_at >= ? THEN duration_minutes ELSE 0 END),
			SUM(duration_minutes),
			SUM(distraction_count)
		FROM focus_sessions`,
		session.FormatInstant(timeutil.RoundToStart(now)),
	).Scan(&today, &allTime, &distractions)
	if err != nil {
		return session.Aggregate{}, storeErr("aggregate sessions", err)
	}

	return session.Aggregate{
		TodayTotalMinutes:   int(today.Int64),
		AllTimeTotalMinutes: int(allTime.Int64),
		TotalDistractions:   int(distractions.Int64),
	}, nil
}

func (c *SQLiteClient) Close() error {
	if c == nil || c.db == nil || c.closed.Swap(true) {
		return nil
	}

	return c.db.Close()
}
