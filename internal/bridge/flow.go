package bridge

import (
	"sync"
	"time"

	"authbridge/internal/platform/dispatch"
)

// Flow is the chainable handle returned by Bridge.Login and
// Bridge.Logout. Handlers may be attached before or after the
// underlying flow progresses: an event that fired before its handler
// was attached is buffered and replayed on attach. Each event is
// delivered at most once.
type Flow struct {
	queue *dispatch.Queue

	mu    sync.Mutex
	delay time.Duration

	nativeAuthFired     bool
	nativeAuthDelivered bool
	nativeAuthHandler   func()

	completedFired     bool
	completedDelivered bool
	completedSuccess   bool
	completedHandler   func(success bool)

	flowErr      error
	errDelivered bool
	errHandler   func(err error)
}

func newFlow(queue *dispatch.Queue) *Flow {
	return &Flow{queue: queue}
}

// OnNativeAuthCompleted attaches a handler for the moment native
// authentication succeeded, before web sessions settle.
func (f *Flow) OnNativeAuthCompleted(fn func()) *Flow {
	f.mu.Lock()
	f.nativeAuthHandler = fn
	fire := fn != nil && f.nativeAuthFired && !f.nativeAuthDelivered
	if fire {
		f.nativeAuthDelivered = true
	}
	delay := f.delay
	f.mu.Unlock()

	if fire {
		f.deliver(delay, fn)
	}
	return f
}

// OnAuthFlowCompleted attaches a handler for the terminal event of the
// whole flow.
func (f *Flow) OnAuthFlowCompleted(fn func(success bool)) *Flow {
	f.mu.Lock()
	f.completedHandler = fn
	fire := fn != nil && f.completedFired && !f.completedDelivered
	if fire {
		f.completedDelivered = true
	}
	success := f.completedSuccess
	f.mu.Unlock()

	if fire {
		f.deliver(0, func() { fn(success) })
	}
	return f
}

// OnError attaches a handler for flow failure. A failed flow still
// delivers OnAuthFlowCompleted(false) afterwards.
func (f *Flow) OnError(fn func(err error)) *Flow {
	f.mu.Lock()
	f.errHandler = fn
	err := f.flowErr
	fire := fn != nil && err != nil && !f.errDelivered
	if fire {
		f.errDelivered = true
	}
	f.mu.Unlock()

	if fire {
		f.deliver(0, func() { fn(err) })
	}
	return f
}

// WithDelayedCompletion postpones delivery of the native-auth callback
// by d, giving the host UI room to settle before reacting. The delay in
// effect when the event is delivered wins.
func (f *Flow) WithDelayedCompletion(d time.Duration) *Flow {
	f.mu.Lock()
	f.delay = d
	f.mu.Unlock()
	return f
}

func (f *Flow) emitNativeAuth() {
	f.mu.Lock()
	f.nativeAuthFired = true
	fn := f.nativeAuthHandler
	fire := fn != nil && !f.nativeAuthDelivered
	if fire {
		f.nativeAuthDelivered = true
	}
	delay := f.delay
	f.mu.Unlock()

	if fire {
		f.deliver(delay, fn)
	}
}

func (f *Flow) emitCompleted(success bool) {
	f.mu.Lock()
	f.completedFired = true
	f.completedSuccess = success
	fn := f.completedHandler
	fire := fn != nil && !f.completedDelivered
	if fire {
		f.completedDelivered = true
	}
	f.mu.Unlock()

	if fire {
		f.deliver(0, func() { fn(success) })
	}
}

func (f *Flow) emitError(err error) {
	f.mu.Lock()
	f.flowErr = err
	fn := f.errHandler
	fire := fn != nil && !f.errDelivered
	if fire {
		f.errDelivered = true
	}
	f.mu.Unlock()

	if fire {
		f.deliver(0, func() { fn(err) })
	}
}

func (f *Flow) deliver(delay time.Duration, fn func()) {
	if delay > 0 {
		f.queue.AfterFunc(delay, fn)
		return
	}
	f.queue.Async(fn)
}
