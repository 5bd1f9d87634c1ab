// Package timer implements the focus session countdown: a state machine that
// tracks remaining time, counts distractions when the program loses the
// foreground, and produces a session record when a session ends
package timer

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focustrack/internal/session"
)

const tickInterval = time.Second

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Recorder persists finished sessions.
type Recorder interface {
	Append(ctx context.Context, rec session.Record) (int64, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore sets where finished sessions are recorded.
func WithStore(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithScheduler replaces the ticker used to drive the countdown.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// WithDuration sets the initial session length in minutes.
func WithDuration(minutes int) Option {
	return func(e *Engine) {
		e.durationMinutes = minutes
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithContext sets the context used when a session that completed on its
// own is recorded.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		e.ctx = ctx
	}
}

// Engine owns a single countdown. All operations, ticks and lifecycle
// notifications are serialized, and each one runs to completion before the
// next is observed.
type Engine struct {
	ctx             context.Context
	clock           Clock
	scheduler       Scheduler
	recorder        Recorder
	task            Task
	logger          *slog.Logger
	observers       []chan Event
	state           State
	generation      uint64
	durationMinutes int
	mu              sync.Mutex
}

// New creates an idle engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		ctx:             context.Background(),
		clock:           systemClock{},
		scheduler:       TickerScheduler{},
		logger:          slog.Default(),
		durationMinutes: DefaultDurationMinutes,
	}

	for _, opt := range opts {
		opt(e)
	}

	if !validDuration(e.durationMinutes) {
		return nil, ErrInvalidDuration.Fmt(MinDurationMinutes, MaxDurationMinutes)
	}

	e.state = idleState(e.durationMinutes * secondsInAMinute)

	return e, nil
}

func validDuration(minutes int) bool {
	return minutes >= MinDurationMinutes && minutes <= MaxDurationMinutes
}

// Status returns a snapshot of the countdown.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.status()
}

// State returns a copy of the raw engine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// SelectCategory sets the category of the next or paused session. It is
// rejected while the countdown is running.
func (e *Engine) SelectCategory(c session.Category) error {
	if !c.Valid() {
		return ErrUnknownCategory.Fmt(string(c))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsRunning {
		return ErrCategoryWhileRunning
	}

	if e.state.SelectedCategory == c {
		return nil
	}

	e.state.SelectedCategory = c

	e.logger.Debug("category selected", slog.String("category", string(c)))
	e.emitLocked(EventStateChange)

	return nil
}

// SetDuration changes the session length. It is accepted only while the
// engine is idle, and minutes must be within the allowed range.
func (e *Engine) SetDuration(minutes int) error {
	if !validDuration(minutes) {
		return ErrInvalidDuration.Fmt(MinDurationMinutes, MaxDurationMinutes)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Phase() != PhaseIdle {
		return ErrDurationLocked
	}

	seconds := minutes * secondsInAMinute

	e.state.InitialDurationSeconds = seconds
	e.state.RemainingSeconds = seconds

	e.logger.Debug("duration set", slog.Int("minutes", minutes))
	e.emitLocked(EventStateChange)

	return nil
}

// SetDurationInput parses free-form user input as a number of minutes and
// applies it with SetDuration.
func (e *Engine) SetDurationInput(input string) error {
	minutes, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return ErrInvalidDuration.Fmt(MinDurationMinutes, MaxDurationMinutes)
	}

	return e.SetDuration(minutes)
}

// Start begins or resumes the countdown. A category must be selected first.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.SelectedCategory == "" {
		return ErrCategoryRequired
	}

	if e.state.IsRunning {
		return nil
	}

	if !e.state.Active() {
		e.state.StartTime = e.clock.Now()
	}

	e.state.IsRunning = true
	e.state.WasPausedByInterruption = false

	e.startTaskLocked()

	e.logger.Debug(
		"timer started",
		slog.String("category", string(e.state.SelectedCategory)),
		slog.Int("remaining", e.state.RemainingSeconds),
	)
	e.emitLocked(EventStateChange)

	return nil
}

// Pause stops the countdown at the user's request. Distractions are not
// affected.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := e.state.IsRunning || e.state.WasPausedByInterruption

	e.stopTaskLocked()

	e.state.IsRunning = false
	e.state.WasPausedByInterruption = false

	if changed {
		e.logger.Debug("timer paused", slog.Int("remaining", e.state.RemainingSeconds))
		e.emitLocked(EventStateChange)
	}
}

// Tick advances the countdown by one second if it is running. When the
// countdown reaches zero the session is completed and recorded.
//
// Tick is for driving the engine by hand, without relying on the scheduler.
// It is not tied to a tick task, so the generation check that drops ticks
// from cancelled tasks does not apply.
func (e *Engine) Tick() {
	e.mu.Lock()
	rec := e.tickLocked()
	e.mu.Unlock()

	e.recordCompletion(rec)
}

// tick is the callback of the task created for generation gen. Ticks from
// tasks that have since been cancelled are dropped.
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		return
	}

	rec := e.tickLocked()
	e.mu.Unlock()

	e.recordCompletion(rec)
}

// recordCompletion persists a session finished by a tick. A failed append is
// logged by persist and reaches observers as Event.Err on EventCompleted.
func (e *Engine) recordCompletion(rec *session.Record) {
	if rec == nil {
		return
	}

	// the error is already on the completion event
	_, _ = e.persist(e.ctx, EventCompleted, *rec)
}

func (e *Engine) tickLocked() *session.Record {
	if !e.state.IsRunning {
		return nil
	}

	e.state.RemainingSeconds = max(0, e.state.RemainingSeconds-1)

	if e.state.RemainingSeconds > 0 {
		e.emitLocked(EventTick)
		return nil
	}

	return e.completeLocked()
}

// completeLocked finalizes a session whose countdown reached zero and
// returns the record to persist.
func (e *Engine) completeLocked() *session.Record {
	now := e.clock.Now()

	e.stopTaskLocked()
	e.state.IsRunning = false

	rec, ok := BuildFromCompletion(e.state, now)

	e.resetLocked()

	if !ok {
		return nil
	}

	return &rec
}

// OnForegroundLost pauses a running countdown and counts one distraction.
func (e *Engine) OnForegroundLost() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.IsRunning {
		return
	}

	e.stopTaskLocked()

	e.state.IsRunning = false
	e.state.WasPausedByInterruption = true
	e.state.DistractionCount++

	e.logger.Debug(
		"distraction recorded",
		slog.Int("count", e.state.DistractionCount),
	)
	e.emitLocked(EventStateChange)
}

// OnForegroundGained clears the interruption flag. The countdown is not
// resumed: an explicit Start is always required.
func (e *Engine) OnForegroundGained() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.WasPausedByInterruption {
		return
	}

	e.state.WasPausedByInterruption = false

	e.emitLocked(EventStateChange)
}

// Attach registers the engine as a listener of l and returns a function that
// detaches it.
func (e *Engine) Attach(l Lifecycle) func() {
	return l.Subscribe(e)
}

// Reset returns the engine to idle. If a started session has elapsed time,
// it is recorded first and the record is returned. The engine is idle when
// Reset returns even if recording fails.
func (e *Engine) Reset(ctx context.Context) (*session.Record, error) {
	e.mu.Lock()

	now := e.clock.Now()

	e.stopTaskLocked()

	rec, ok := BuildFromEarlyTermination(e.state, now)

	e.resetLocked()
	e.emitLocked(EventStateChange)
	e.mu.Unlock()

	if !ok {
		return nil, nil
	}

	return e.persist(ctx, EventTerminated, rec)
}

func (e *Engine) resetLocked() {
	e.state = idleState(e.state.InitialDurationSeconds)
}

// persist hands a finalized record to the recorder and notifies observers.
// It is called without holding the lock, after the state has been reset.
func (e *Engine) persist(
	ctx context.Context,
	typ EventType,
	rec session.Record,
) (*session.Record, error) {
	var err error

	if e.recorder != nil {
		var id int64

		id, err = e.recorder.Append(ctx, rec)
		if err == nil {
			rec.ID = id
		}
	}

	if err != nil {
		e.logger.Error(
			"unable to record session",
			slog.String("category", string(rec.Category)),
			slog.Int("minutes", rec.DurationMinutes),
			slog.Any("error", err),
		)
	} else {
		e.logger.Info(
			"session recorded",
			slog.Int64("id", rec.ID),
			slog.String("category", string(rec.Category)),
			slog.Int("minutes", rec.DurationMinutes),
			slog.Int("distractions", rec.DistractionCount),
			slog.String("kind", string(typ)),
		)
	}

	if e.logger.Enabled(ctx, slog.LevelDebug) {
		e.logger.Debug(spew.Sdump(rec))
	}

	e.mu.Lock()
	e.emitEventLocked(Event{
		Type:   typ,
		Status: e.state.status(),
		Record: &rec,
		Err:    err,
		At:     rec.CreatedAt,
	})
	e.mu.Unlock()

	return &rec, err
}

func (e *Engine) startTaskLocked() {
	e.stopTaskLocked()

	gen := e.generation

	e.task = e.scheduler.Every(tickInterval, func() {
		e.tick(gen)
	})
}

// stopTaskLocked cancels the outstanding tick task, if any, and invalidates
// its generation so that a tick already in flight has no effect.
func (e *Engine) stopTaskLocked() {
	if e.task != nil {
		e.task.Stop()
		e.task = nil
	}

	e.generation++
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (e *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan Event, buffer)

	e.mu.Lock()
	e.observers = append(e.observers, ch)
	e.mu.Unlock()

	return ch
}

// Close stops the countdown and closes all observer channels. A running
// session is left unrecorded; call Reset first to keep it.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTaskLocked()
	e.state.IsRunning = false

	for _, ch := range e.observers {
		close(ch)
	}

	e.observers = nil
}

func (e *Engine) emitLocked(typ EventType) {
	e.emitEventLocked(Event{
		Type:   typ,
		Status: e.state.status(),
		At:     e.clock.Now(),
	})
}

func (e *Engine) emitEventLocked(event Event) {
	for _, ch := range e.observers {
		select {
		case ch <- event:
		default:
		}
	}
}
