package tui

import (
	"math"
	"testing"
	"time"

	"github.com/taigrr/cardswipe/pkg/anim"
	"github.com/taigrr/cardswipe/pkg/geom"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) add(d time.Duration) { c.t = c.t.Add(d) }

func near(a, b geom.Transform) bool {
	const eps = 1e-9
	return math.Abs(a.TranslateX-b.TranslateX) < eps &&
		math.Abs(a.TranslateY-b.TranslateY) < eps &&
		math.Abs(a.RotationDeg-b.RotationDeg) < eps
}

func TestSurfaceInterpolates(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	s := NewSurface(c.now, geom.V(300, 400))
	if !s.Transform().IsNeutral() {
		t.Fatalf("new surface at %v", s.Transform())
	}

	target := geom.Transform{TranslateX: 100, RotationDeg: 10}
	s.SetTransform(target, anim.Transition{Duration: 100 * time.Millisecond, Easing: anim.Linear})
	c.add(50 * time.Millisecond)
	if got, want := s.Transform(), (geom.Transform{TranslateX: 50, RotationDeg: 5}); !near(got, want) {
		t.Errorf("halfway at %v, want %v", got, want)
	}
	c.add(time.Second)
	if got := s.Transform(); got != target {
		t.Errorf("finished at %v, want %v", got, target)
	}
	if s.Target() != target {
		t.Errorf("Target() = %v", s.Target())
	}
}

func TestSurfaceRetargetsFromCurrent(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	s := NewSurface(c.now, geom.V(300, 400))
	lin := anim.Transition{Duration: 100 * time.Millisecond, Easing: anim.Linear}

	s.SetTransform(geom.Transform{TranslateX: 100}, lin)
	c.add(50 * time.Millisecond)
	s.SetTransform(geom.Neutral(), lin)
	if got := s.Transform(); !near(got, geom.Transform{TranslateX: 50}) {
		t.Errorf("retarget jumped to %v", got)
	}
	c.add(50 * time.Millisecond)
	if got := s.Transform(); !near(got, geom.Transform{TranslateX: 25}) {
		t.Errorf("after retarget at %v", got)
	}
}

func TestSurfaceSetTransition(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	s := NewSurface(c.now, geom.V(300, 400))
	s.SetTransform(geom.Transform{TranslateY: 80}, anim.Transition{Duration: time.Second, Easing: anim.Linear})
	c.add(250 * time.Millisecond)

	fast := anim.Transition{Duration: 10 * time.Millisecond, Easing: anim.Linear}
	s.SetTransition(fast)
	if s.Transition() != fast {
		t.Errorf("Transition() = %v", s.Transition())
	}
	if got := s.Transform(); !near(got, geom.Transform{TranslateY: 20}) {
		t.Errorf("SetTransition moved the card to %v", got)
	}
	c.add(10 * time.Millisecond)
	if got := s.Transform(); got != (geom.Transform{TranslateY: 80}) {
		t.Errorf("settled at %v", got)
	}
}

func TestSurfaceHideAndViewport(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	s := NewSurface(c.now, geom.V(300, 400))
	if s.Hidden() {
		t.Fatal("new surface hidden")
	}
	s.Hide()
	if !s.Hidden() {
		t.Error("Hide() did not hide")
	}
	s.SetViewport(geom.V(10, 20))
	if s.Viewport() != geom.V(10, 20) {
		t.Errorf("Viewport() = %v", s.Viewport())
	}
}
