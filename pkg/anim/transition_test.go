package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{Linear, Ease, EaseOut} {
		assert.Equal(t, 0.0, e.At(-0.5), e.String())
		assert.Equal(t, 0.0, e.At(0), e.String())
		assert.Equal(t, 1.0, e.At(1), e.String())
		assert.Equal(t, 1.0, e.At(2), e.String())
	}
}

func TestBezierEasingsAreMonotone(t *testing.T) {
	for _, e := range []Easing{Ease, EaseOut} {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e.At(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev-1e-9, "%s at %d", e, i)
			prev = v
		}
	}
	assert.Greater(t, EaseOut.At(0.5), 0.5)
	assert.InDelta(t, 0.5, Linear.At(0.5), 1e-12)
}

func TestTransitionProgress(t *testing.T) {
	tr := Transition{Duration: 100 * time.Millisecond, Easing: Linear}
	assert.InDelta(t, 0.25, tr.Progress(25*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, tr.Progress(time.Second))
	assert.Equal(t, 1.0, Transition{}.Progress(0))
	assert.Equal(t, "ease-out 0.5s", Transition{Duration: 500 * time.Millisecond, Easing: EaseOut}.String())
}
