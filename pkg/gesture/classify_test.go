package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/cardswipe/pkg/geom"
)

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		name  string
		speed geom.Speed
		want  Direction
	}{
		{"right", geom.V(400, 50), Right},
		{"left", geom.V(-400, 50), Left},
		{"up is positive y", geom.V(50, 350), Up},
		{"down", geom.V(10, -900), Down},
		{"tie goes vertical", geom.V(500, 500), Up},
		{"zero is down", geom.V(0, 0), Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectionOf(tt.speed))
		})
	}
}

func TestClassifyThreshold(t *testing.T) {
	speeds := []geom.Speed{
		geom.V(300, 0), geom.V(-300, 299), geom.V(0, -300), geom.V(100, -50), geom.V(0, 0),
	}
	for _, s := range speeds {
		_, swiped := Classify(s, DefaultThreshold)
		assert.False(t, swiped, "speed %v must not swipe", s)
		d := Decide(s, DefaultPolicy())
		assert.False(t, d.Fling, "speed %v must snap back", s)
	}

	for _, s := range []geom.Speed{geom.V(301, 0), geom.V(0, -301), geom.V(-1000, 20)} {
		d := Decide(s, DefaultPolicy())
		assert.True(t, d.Swiped, "speed %v should swipe", s)
		assert.True(t, d.Fling, "speed %v should fling", s)
	}
}

func TestClassifyIsPure(t *testing.T) {
	s := geom.V(-412.5, 87)
	d1, ok1 := Classify(s, 300)
	d2, ok2 := Classify(s, 300)
	assert.Equal(t, d1, d2)
	assert.Equal(t, ok1, ok2)
}

func TestDecidePreventAndFlick(t *testing.T) {
	// Scenario C: the swipe is detected but the fling is suppressed.
	p := DefaultPolicy()
	p.Prevent = NewDirectionSet(Up)
	d := Decide(geom.V(50, 350), p)
	assert.Equal(t, Decision{Direction: Up, Swiped: true, Fling: false}, d)

	// Other directions still fling.
	d = Decide(geom.V(400, 50), p)
	assert.Equal(t, Decision{Direction: Right, Swiped: true, Fling: true}, d)

	p = DefaultPolicy()
	p.FlickOnSwipe = false
	d = Decide(geom.V(-800, 0), p)
	assert.True(t, d.Swiped)
	assert.False(t, d.Fling)
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(" " + d.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestDirectionSet(t *testing.T) {
	s, err := ParseDirectionSet([]string{"down", "LEFT"})
	require.NoError(t, err)
	assert.True(t, s.Contains(Down))
	assert.True(t, s.Contains(Left))
	assert.False(t, s.Contains(Up))
	assert.Equal(t, []Direction{Left, Down}, s.List())
	assert.Equal(t, s, NewDirectionSet(Left, Down))

	_, err = ParseDirectionSet([]string{"nope"})
	assert.Error(t, err)
}
