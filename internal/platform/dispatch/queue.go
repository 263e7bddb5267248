// Package dispatch provides a serial executor modeling the UI-affinity
// execution context of the host application. Everything that touches the
// embedded web runtime (tab creation and closure bookkeeping, cookie
// injection) and every user-facing callback is funneled through one
// Queue, which drains tasks in FIFO order on a single goroutine.
package dispatch

import (
	"sync"
	"time"
)

// Queue is a serial FIFO executor. Tasks submitted with Async run one at
// a time, in submission order, on the queue's own goroutine. The queue
// is unbounded so that tasks enqueued from the queue goroutine itself
// never deadlock.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []func()
	closed bool
	done   chan struct{}
}

// New creates a running queue. Callers must Close it when finished.
func New() *Queue {
	q := &Queue{done: make(chan struct{})}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

func (q *Queue) run() {
	for {
		q.mu.Lock()
		for len(q.tasks) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.tasks) == 0 && q.closed {
			q.mu.Unlock()
			close(q.done)
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
	}
}

// Async enqueues fn for execution. Tasks submitted after Close are dropped.
func (q *Queue) Async(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.tasks = append(q.tasks, fn)
	q.cond.Signal()
}

// Sync enqueues fn and blocks until it has run. Must not be called from
// a task already running on the queue.
func (q *Queue) Sync(fn func()) {
	ran := make(chan struct{})
	q.Async(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
	case <-q.done:
	}
}

// Barrier blocks until every task enqueued before it has run. Used by
// tests to observe queue-delivered callbacks deterministically.
func (q *Queue) Barrier() {
	q.Sync(func() {})
}

// Close stops the queue after draining already-submitted tasks.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()
	<-q.done
}

// Timer is a single-shot cancelable timer whose function fires on the
// queue. Fallback timers must be canceled on normal completion so a
// terminal callback cannot be delivered twice.
type Timer struct {
	t *time.Timer
}

// AfterFunc arms a timer that enqueues fn after d. A non-positive d
// enqueues fn immediately.
func (q *Queue) AfterFunc(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		q.Async(fn)
		return &Timer{}
	}
	return &Timer{t: time.AfterFunc(d, func() { q.Async(fn) })}
}

// Stop cancels the timer. Reports false when the timer already fired or
// was never armed.
func (t *Timer) Stop() bool {
	if t.t == nil {
		return false
	}
	return t.t.Stop()
}
