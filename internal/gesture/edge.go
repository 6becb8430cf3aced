package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/touch"
)

// EdgeSwipeRecognizer recognizes swipes that start within EdgeThreshold of
// one screen edge and travel inward. A touch beginning anywhere else fails
// immediately. The emitted direction faces away from the edge: a left-edge
// swipe reports DirectionRight.
type EdgeSwipeRecognizer struct {
	core
	edge Edge
}

// NewEdgeSwipeRecognizer creates an edge swipe recognizer for one edge.
func NewEdgeSwipeRecognizer(edge Edge, config Config, cb Callback) *EdgeSwipeRecognizer {
	r := &EdgeSwipeRecognizer{
		core: newCore(typeForEdge(edge), config),
		edge: edge,
	}
	r.callback = cb
	return r
}

func typeForEdge(e Edge) Type {
	switch e {
	case EdgeRight:
		return TypeEdgeSwipeRight
	case EdgeTop:
		return TypeEdgeSwipeTop
	case EdgeBottom:
		return TypeEdgeSwipeBottom
	}
	return TypeEdgeSwipeLeft
}

// Edge returns the screen edge this recognizer watches.
func (r *EdgeSwipeRecognizer) Edge() Edge {
	return r.edge
}

// isNearEdge reports whether a point lies within EdgeThreshold of the
// recognizer's edge, relative to the configured screen dimensions.
func (r *EdgeSwipeRecognizer) isNearEdge(p touch.Point) bool {
	switch r.edge {
	case EdgeLeft:
		return p.X <= r.config.EdgeThreshold
	case EdgeRight:
		return p.X >= r.config.ScreenWidth-r.config.EdgeThreshold
	case EdgeTop:
		return p.Y <= r.config.EdgeThreshold
	case EdgeBottom:
		return p.Y >= r.config.ScreenHeight-r.config.EdgeThreshold
	}
	return false
}

// inwardDirection returns the swipe direction pointing away from the edge.
func (r *EdgeSwipeRecognizer) inwardDirection() Direction {
	switch r.edge {
	case EdgeRight:
		return DirectionLeft
	case EdgeTop:
		return DirectionDown
	case EdgeBottom:
		return DirectionUp
	}
	return DirectionRight
}

// travelsInward reports whether the displacement's dominant axis and sign
// match the edge's expected inward motion.
func (r *EdgeSwipeRecognizer) travelsInward(dx, dy float64) bool {
	switch r.edge {
	case EdgeLeft:
		return dx > 0 && math.Abs(dx) > math.Abs(dy)
	case EdgeRight:
		return dx < 0 && math.Abs(dx) > math.Abs(dy)
	case EdgeTop:
		return dy > 0 && math.Abs(dy) > math.Abs(dx)
	case EdgeBottom:
		return dy < 0 && math.Abs(dy) > math.Abs(dx)
	}
	return false
}

// HandleTouch advances the edge swipe state machine with one touch event.
func (r *EdgeSwipeRecognizer) HandleTouch(ev touch.Event) {
	if !r.enabled {
		return
	}

	switch ev.Phase {
	case touch.PhaseBegan:
		p := ev.Primary()
		r.startTime = ev.Timestamp
		r.startPos = p.Point
		r.currentPos = p.Point
		r.touchCount = len(ev.Touches)
		if r.isNearEdge(p.Point) {
			r.state = StatePossible
		} else {
			r.state = StateFailed
		}

	case touch.PhaseMoved:
		r.currentPos = ev.Primary().Point

	case touch.PhaseEnded:
		r.handleEnded(ev)

	case touch.PhaseCancelled:
		r.state = StateCancelled
		r.Reset()
	}
}

func (r *EdgeSwipeRecognizer) handleEnded(ev touch.Event) {
	if r.state != StatePossible {
		r.Reset()
		return
	}

	end := r.currentPos
	if len(ev.Touches) > 0 {
		end = ev.Touches[0].Point
	}

	dx := end.X - r.startPos.X
	dy := end.Y - r.startPos.Y
	if r.startPos.Distance(end) < r.config.SwipeMinDistance || !r.travelsInward(dx, dy) {
		r.state = StateFailed
		r.Reset()
		return
	}

	velocity := touch.Point{}
	if durationMs := ev.Timestamp - r.startTime; durationMs > 0 {
		seconds := float64(durationMs) / 1000.0
		velocity = touch.Point{X: dx / seconds, Y: dy / seconds}
	}

	r.state = StateEnded
	r.emit(Data{Swipe: &SwipeData{
		Direction:     r.inwardDirection(),
		Velocity:      velocity,
		StartPosition: r.startPos,
		EndPosition:   end,
	}}, ev.Timestamp)
	r.Reset()
}

// Reset returns the recognizer to possible.
func (r *EdgeSwipeRecognizer) Reset() {
	r.reset()
}
