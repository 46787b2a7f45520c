package anim

import (
	"context"
	"errors"
)

// ErrCancelled is returned by Wait when the animation was cancelled.
var ErrCancelled = errors.New("animation cancelled")

// Completion resolves when an animation finishes or is cancelled. Then
// callbacks run on the scheduler goroutine; Done and Wait may be used from any
// goroutine.
type Completion struct {
	done      chan struct{}
	finished  bool
	cancelled bool
	then      []func()
	onCancel  func()
}

func newCompletion(onCancel func()) *Completion {
	return &Completion{done: make(chan struct{}), onCancel: onCancel}
}

// Done is closed once the completion resolves either way.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Cancelled reports whether the animation was cancelled before finishing.
func (c *Completion) Cancelled() bool {
	return c.cancelled
}

// Finished reports whether the animation ran to the end.
func (c *Completion) Finished() bool {
	return c.finished
}

// Then registers fn to run when the animation finishes. It runs immediately
// if the animation already finished, and never if it was cancelled.
func (c *Completion) Then(fn func()) {
	if c.finished {
		fn()
		return
	}
	if c.cancelled {
		return
	}
	c.then = append(c.then, fn)
}

// Cancel stops a pending animation. It is a no-op once resolved.
func (c *Completion) Cancel() {
	if c.finished || c.cancelled {
		return
	}
	c.cancelled = true
	c.then = nil
	if c.onCancel != nil {
		c.onCancel()
	}
	close(c.done)
}

// Wait blocks until the completion resolves or ctx is done.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		if c.cancelled {
			return ErrCancelled
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Completion) resolve() {
	if c.finished || c.cancelled {
		return
	}
	c.finished = true
	close(c.done)
	then := c.then
	c.then = nil
	for _, fn := range then {
		fn()
	}
}
