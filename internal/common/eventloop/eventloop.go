// Package eventloop serializes all game-mutating work onto one goroutine.
// Inbound connection events, grace-period timer callbacks and janitor sweeps
// all go through the same loop, so handling of any two events touching the
// same game is totally ordered and handlers never interleave.
package eventloop

import "context"

// Submitter accepts work for serialized execution.
type Submitter interface {
	Submit(fn func())
}

// Loop is a single-goroutine cooperative event loop.
type Loop struct {
	tasks chan func()
}

// New creates a loop with the given queue depth.
func New(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Loop{tasks: make(chan func(), queueSize)}
}

// Submit enqueues fn for execution on the loop goroutine. It blocks only
// when the queue is full.
func (l *Loop) Submit(fn func()) {
	l.tasks <- fn
}

// Run executes submitted tasks until ctx is cancelled. Handlers must not
// block; nothing inside the loop awaits timers or I/O.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.tasks:
			fn()
		}
	}
}
