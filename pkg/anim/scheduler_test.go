package anim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Unix(1700000000, 0)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler(epoch)
	var got []string
	s.After(30*time.Millisecond, func() { got = append(got, "c") })
	s.After(10*time.Millisecond, func() { got = append(got, "a") })
	s.After(10*time.Millisecond, func() { got = append(got, "b") })

	assert.Equal(t, 0, s.Step(9*time.Millisecond))
	assert.Equal(t, 2, s.Step(time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, s.Pending())

	s.Advance(epoch.Add(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, epoch.Add(time.Second), s.Now())
}

func TestSchedulerNestedTimers(t *testing.T) {
	s := NewScheduler(epoch)
	var at []time.Time
	s.After(10*time.Millisecond, func() {
		at = append(at, s.Now())
		s.After(5*time.Millisecond, func() { at = append(at, s.Now()) })
	})
	assert.Equal(t, 2, s.Step(20*time.Millisecond))
	require.Len(t, at, 2)
	assert.Equal(t, epoch.Add(10*time.Millisecond), at[0])
	assert.Equal(t, epoch.Add(15*time.Millisecond), at[1])
}

func TestTimerStop(t *testing.T) {
	s := NewScheduler(epoch)
	fired := false
	tm := s.After(time.Millisecond, func() { fired = true })
	other := s.After(2*time.Millisecond, func() {})

	wake, ok := s.NextWake()
	require.True(t, ok)
	assert.Equal(t, epoch.Add(time.Millisecond), wake)

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	s.Step(time.Second)
	assert.False(t, fired)
	assert.False(t, other.Stop(), "fired timers cannot be stopped")
	_, ok = s.NextWake()
	assert.False(t, ok)
}

func TestCompletion(t *testing.T) {
	c := newCompletion(nil)
	var order []int
	c.Then(func() { order = append(order, 1) })
	c.resolve()
	c.resolve()
	c.Then(func() { order = append(order, 2) })
	assert.Equal(t, []int{1, 2}, order)
	assert.True(t, c.Finished())
	require.NoError(t, c.Wait(context.Background()))

	c.Cancel()
	assert.False(t, c.Cancelled(), "cancel after finish is a no-op")
}

func TestCompletionCancel(t *testing.T) {
	stopped := 0
	c := newCompletion(func() { stopped++ })
	ran := false
	c.Then(func() { ran = true })
	c.Cancel()
	c.Cancel()
	c.resolve()

	assert.False(t, ran)
	assert.Equal(t, 1, stopped)
	assert.True(t, c.Cancelled())
	assert.ErrorIs(t, c.Wait(context.Background()), ErrCancelled)
}

func TestCompletionWaitContext(t *testing.T) {
	c := newCompletion(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Wait(ctx), context.Canceled)
}
