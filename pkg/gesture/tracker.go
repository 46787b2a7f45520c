package gesture

import (
	"fmt"
	"time"

	"fortio.org/log"
	"github.com/taigrr/cardswipe/pkg/geom"
)

// DefaultMaxTilt is the drag tilt, in degrees, applied at 1000 px/s of
// horizontal speed.
const DefaultMaxTilt = 5.0

// PointerKind is the kind of a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

// String returns a human-readable kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	case PointerLeave:
		return "Leave"
	default:
		return "Unknown"
	}
}

// Source identifies the input device that produced an event.
type Source uint8

const (
	Mouse Source = iota
	Touch
)

// PointerEvent is a single raw input sample in surface coordinates.
type PointerEvent struct {
	Kind   PointerKind
	Source Source
	Pos    geom.Vector
	Time   time.Time
}

// State is the drag state of one card.
type State uint8

const (
	Idle State = iota
	Dragging
	SnappingBack
	FlingingOut
	Gone
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case SnappingBack:
		return "SnappingBack"
	case FlingingOut:
		return "FlingingOut"
	case Gone:
		return "Gone"
	default:
		return "Unknown"
	}
}

var transitions = map[State][]State{
	Idle:         {Dragging, FlingingOut},
	Dragging:     {SnappingBack, FlingingOut, Idle},
	SnappingBack: {Idle, Dragging, FlingingOut},
	FlingingOut:  {Gone},
}

// CanTransition reports whether from -> to is a legal state change.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Handler receives the output of a Tracker.
type Handler interface {
	// DragStarted is called when a new drag session begins.
	DragStarted()
	// Dragged is called with the transform to show for each move sample.
	Dragged(t geom.Transform)
	// Released is called exactly once per drag session with the last speed.
	// The handler is expected to move the tracker out of Dragging.
	Released(speed geom.Speed)
}

// Tracker follows one drag session at a time for a single surface.
type Tracker struct {
	maxTilt float64
	handler Handler

	state    State
	source   Source
	offset   geom.Vector
	last     geom.Location
	speed    geom.Speed
	released bool
}

// NewTracker creates a tracker reporting to h.
func NewTracker(maxTilt float64, h Handler) *Tracker {
	return &Tracker{maxTilt: maxTilt, handler: h, released: true}
}

// State returns the current drag state.
func (t *Tracker) State() State {
	return t.state
}

// Speed returns the most recent velocity sample.
func (t *Tracker) Speed() geom.Speed {
	return t.speed
}

// LastLocation returns the most recent position sample.
func (t *Tracker) LastLocation() geom.Location {
	return t.last
}

// Transition moves the tracker to a new state.
func (t *Tracker) Transition(to State) error {
	if !CanTransition(t.state, to) {
		return fmt.Errorf("illegal drag state transition %s -> %s", t.state, to)
	}
	log.Debugf("drag state %s -> %s", t.state, to)
	t.state = to
	return nil
}

// Handle processes one event and reports whether it was consumed. Events that
// do not apply to the current state are ignored.
func (t *Tracker) Handle(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		return t.start(ev)
	case PointerMove:
		return t.move(ev)
	case PointerUp, PointerLeave:
		return t.release(ev)
	}
	return false
}

// Abort ends an active drag without reporting a release.
func (t *Tracker) Abort() {
	if t.state == Dragging {
		t.released = true
		t.state = Idle
	}
}

func (t *Tracker) start(ev PointerEvent) bool {
	if t.state != Idle && t.state != SnappingBack {
		return false
	}
	t.state = Dragging
	t.source = ev.Source
	t.released = false
	t.offset = ev.Pos.Negate()
	t.last = geom.At(geom.Zero(), ev.Time)
	t.speed = geom.Speed{}
	t.handler.DragStarted()
	return true
}

func (t *Tracker) move(ev PointerEvent) bool {
	if t.state != Dragging || ev.Source != t.source {
		return false
	}
	loc := geom.At(ev.Pos.Add(t.offset), ev.Time)
	speed, err := geom.EstimateVelocity(t.last, loc)
	if err != nil {
		log.Debugf("move at %v: %v, using zero speed", ev.Pos, err)
	}
	t.handler.Dragged(geom.Transform{
		TranslateX:  loc.X,
		TranslateY:  loc.Y,
		RotationDeg: speed.X / 1000 * t.maxTilt,
	})
	t.last = loc
	t.speed = speed
	return true
}

func (t *Tracker) release(ev PointerEvent) bool {
	if t.state != Dragging || ev.Source != t.source || t.released {
		return false
	}
	t.released = true
	t.handler.Released(t.speed)
	if t.state == Dragging {
		t.state = Idle
	}
	return true
}
