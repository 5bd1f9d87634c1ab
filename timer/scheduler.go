package timer

import (
	"sync"
	"time"
)

// Task is a handle to a periodic callback.
type Task interface {
	// Stop cancels the task. A callback that is already running may still
	// complete.
	Stop()
}

// Scheduler creates periodic tasks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// TickerScheduler runs each task on its own goroutine driven by a
// time.Ticker.
type TickerScheduler struct{}

type tickerTask struct {
	stopCh chan struct{}
	once   sync.Once
}

func (t *tickerTask) Stop() {
	t.once.Do(func() {
		close(t.stopCh)
	})
}

// Every calls fn once per interval until the returned task is stopped.
func (TickerScheduler) Every(interval time.Duration, fn func()) Task {
	task := &tickerTask{
		stopCh: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-task.stopCh:
				return
			case <-ticker.C:
				select {
				case <-task.stopCh:
					return
				default:
				}

				fn()
			}
		}
	}()

	return task
}
