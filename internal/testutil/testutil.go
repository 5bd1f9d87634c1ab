// Package testutil provides test doubles shared by focustrack tests
package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/focustrack/internal/osutil"
	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/timer"
)

// GoldenTest is a test case whose output is compared against a golden file
// under testdata.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile asserts that the output of tc matches its golden file. A
// nil output asserts that no golden file exists.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))

	compareOutput := func(output []byte, goldenFileName string) {
		if output != nil {
			g.Assert(t, goldenFileName, output)
		} else {
			f := filepath.Join("testdata", goldenFileName+".golden")
			if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
				t.Fatalf("expected no output, but golden file exists: %s", f)
			}
		}
	}

	snap, golden := tc.Output()

	compareOutput(snap, golden)
}

// Clock is a manually advanced clock.
type Clock struct {
	now time.Time
	mu  sync.Mutex
}

// NewClock returns a clock frozen at t.
func NewClock(t time.Time) *Clock {
	return &Clock{now: t}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Scheduler records scheduled tasks so that tests can fire them by hand.
type Scheduler struct {
	tasks []*Task
	mu    sync.Mutex
}

// Task is a task created by Scheduler.
type Task struct {
	fn      func()
	stopped bool
	mu      sync.Mutex
}

func (t *Task) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (t *Task) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stopped
}

// Fire runs the task callback even if the task has been stopped, which
// simulates a tick that was already in flight when the task was cancelled.
func (t *Task) Fire() {
	t.fn()
}

func (s *Scheduler) Every(_ time.Duration, fn func()) timer.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{fn: fn}
	s.tasks = append(s.tasks, t)

	return t
}

// Tasks returns every task created so far.
func (s *Scheduler) Tasks() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*Task(nil), s.tasks...)
}

// Active returns the tasks that have not been stopped.
func (s *Scheduler) Active() []*Task {
	var active []*Task

	for _, t := range s.Tasks() {
		if !t.Stopped() {
			active = append(active, t)
		}
	}

	return active
}

// Tick fires every active task n times. Tasks that are stopped while firing
// are skipped for the remaining iterations.
func (s *Scheduler) Tick(n int) {
	for range n {
		for _, t := range s.Active() {
			t.Fire()
		}
	}
}

// Recorder is an in-memory session recorder.
type Recorder struct {
	Err     error
	records []session.Record
	mu      sync.Mutex
}

func (r *Recorder) Append(_ context.Context, rec session.Record) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}

	r.records = append(r.records, rec)

	return int64(len(r.records)), nil
}

// Records returns the sessions recorded so far.
func (r *Recorder) Records() []session.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]session.Record(nil), r.records...)
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
