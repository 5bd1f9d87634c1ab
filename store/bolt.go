package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/timeutil"
)

const sessionBucket = "sessions"

// BoltClient is a BoltDB database client. Records are stored as JSON under an
// 8-byte big-endian key taken from the bucket sequence, so keys are
// append-only and never reused.
type BoltClient struct {
	db     *bolt.DB
	closed atomic.Bool
}

// NewBoltClient opens or creates the database at path and locks it.
func NewBoltClient(path string) (*BoltClient, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, storeErr("open bolt database", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, storeErr("create buckets", err)
	}

	return &BoltClient{db: db}, nil
}

func (c *BoltClient) ready(ctx context.Context) error {
	if c == nil || c.db == nil || c.closed.Load() {
		return ErrNotInitialized
	}

	return ctx.Err()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)

	return b
}

func (c *BoltClient) Append(ctx context.Context, rec session.Record) (int64, error) {
	if err := c.ready(ctx); err != nil {
		return 0, err
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		rec.ID = int64(seq)

		value, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		return b.Put(itob(seq), value)
	})
	if err != nil {
		return 0, storeErr("append session", err)
	}

	return rec.ID, nil
}

// scan decodes every record accepted by keep.
func (c *BoltClient) scan(
	ctx context.Context,
	keep func(session.Record) bool,
) ([]session.Record, error) {
	if err := c.ready(ctx); err != nil {
		return nil, err
	}

	var records []session.Record

	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(k, v []byte) error {
			var rec session.Record

			err := json.Unmarshal(v, &rec)
			if err != nil {
				return err
			}

			rec.ID = int64(binary.BigEndian.Uint64(k))

			if keep(rec) {
				records = append(records, rec)
			}

			return nil
		})
	})
	if err != nil {
		return nil, storeErr("read sessions", err)
	}

	slices.SortStableFunc(records, newerFirst)

	return records, nil
}

func (c *BoltClient) QueryAll(ctx context.Context) ([]session.Record, error) {
	return c.scan(ctx, func(session.Record) bool {
		return true
	})
}

func (c *BoltClient) QueryRecent(
	ctx context.Context,
	since time.Time,
) ([]session.Record, error) {
	return c.scan(ctx, func(rec session.Record) bool {
		return !rec.CreatedAt.Before(since.Truncate(time.Millisecond))
	})
}

func (c *BoltClient) QueryAggregate(
	ctx context.Context,
	now time.Time,
) (session.Aggregate, error) {
	records, err := c.QueryAll(ctx)
	if err != nil {
		return session.Aggregate{}, err
	}

	return aggregate(records, timeutil.RoundToStart(now)), nil
}

func (c *BoltClient) Close() error {
	if c == nil || c.db == nil || c.closed.Swap(true) {
		return nil
	}

	return c.db.Close()
}

func aggregate(records []session.Record, todayStart time.Time) session.Aggregate {
	var agg session.Aggregate

	for i := range records {
		rec := &records[i]

		agg.AllTimeTotalMinutes += rec.DurationMinutes
		agg.TotalDistractions += rec.DistractionCount

		if !rec.CreatedAt.Before(todayStart) {
			agg.TodayTotalMinutes += rec.DurationMinutes
		}
	}

	return agg
}
