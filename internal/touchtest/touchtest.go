// Package touchtest builds deterministic touch event sequences for tests
// and replay fixtures. Every builder derives positions and timestamps
// arithmetically from its arguments, so a sequence is identical on every
// run and across hosts.
package touchtest

import (
	"math"

	"github.com/ayusman/mudra/internal/touch"
)

// Began returns a began event for the given touches.
func Began(ts int64, pts ...touch.TouchPoint) touch.Event {
	return touch.Event{Touches: pts, Phase: touch.PhaseBegan, Timestamp: ts}
}

// Moved returns a moved event for the given touches.
func Moved(ts int64, pts ...touch.TouchPoint) touch.Event {
	return touch.Event{Touches: pts, Phase: touch.PhaseMoved, Timestamp: ts}
}

// Stationary returns a stationary event for the given touches.
func Stationary(ts int64, pts ...touch.TouchPoint) touch.Event {
	return touch.Event{Touches: pts, Phase: touch.PhaseStationary, Timestamp: ts}
}

// Ended returns an ended event for the given touches.
func Ended(ts int64, pts ...touch.TouchPoint) touch.Event {
	return touch.Event{Touches: pts, Phase: touch.PhaseEnded, Timestamp: ts}
}

// Cancelled returns a cancelled event for the given touches.
func Cancelled(ts int64, pts ...touch.TouchPoint) touch.Event {
	return touch.Event{Touches: pts, Phase: touch.PhaseCancelled, Timestamp: ts}
}

// At returns a touch point with the given id, position and timestamp.
func At(id int, x, y float64, ts int64) touch.TouchPoint {
	return touch.TouchPoint{ID: id, Point: touch.Point{X: x, Y: y}, Pressure: 1.0, Timestamp: ts}
}

// Tap returns a quick down/up pair at one position.
func Tap(x, y float64, start int64) []touch.Event {
	return []touch.Event{
		Began(start, At(1, x, y, start)),
		Ended(start+50, At(1, x, y, start+50)),
	}
}

// TapChain returns n taps at one position, each lasting 50ms with the
// given gap between lift and the next touch down.
func TapChain(n int, x, y float64, start, gapMs int64) []touch.Event {
	var events []touch.Event
	ts := start
	for i := 0; i < n; i++ {
		events = append(events, Tap(x, y, ts)...)
		ts += 50 + gapMs
	}
	return events
}

// SwipeRight returns the canonical rightward stroke: down at the origin,
// one move to (60,0), lift at the same spot 100ms after the touch down.
func SwipeRight(start int64) []touch.Event {
	return []touch.Event{
		Began(start, At(1, 0, 0, start)),
		Moved(start+100, At(1, 60, 0, start+100)),
		Ended(start+100, At(1, 60, 0, start+100)),
	}
}

// Swipe returns a stroke from one point to another over the given
// duration, with intermediate moved events at evenly spaced steps.
func Swipe(from, to touch.Point, start, durationMs int64, steps int) []touch.Event {
	events := []touch.Event{Began(start, At(1, from.X, from.Y, start))}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		ts := start + int64(f*float64(durationMs))
		events = append(events, Moved(ts, At(1, from.X+(to.X-from.X)*f, from.Y+(to.Y-from.Y)*f, ts)))
	}
	end := start + durationMs
	events = append(events, Ended(end, At(1, to.X, to.Y, end)))
	return events
}

// LongPress returns a press held stationary for holdMs before lifting.
// Stationary events arrive every 100ms, mirroring OS hold batching.
func LongPress(x, y float64, start, holdMs int64) []touch.Event {
	events := []touch.Event{Began(start, At(1, x, y, start))}
	for ts := start + 100; ts <= start+holdMs; ts += 100 {
		events = append(events, Stationary(ts, At(1, x, y, ts)))
	}
	end := start + holdMs
	events = append(events, Ended(end, At(1, x, y, end)))
	return events
}

// twoTouchesAt returns a horizontal two-touch pair centered on c with the
// given separation.
func twoTouchesAt(c touch.Point, separation float64, ts int64) []touch.TouchPoint {
	half := separation / 2
	return []touch.TouchPoint{
		At(1, c.X-half, c.Y, ts),
		At(2, c.X+half, c.Y, ts),
	}
}

// Pinch returns a two-finger gesture whose finger separation moves from
// fromDist to toDist over the given duration.
func Pinch(center touch.Point, fromDist, toDist float64, start, durationMs int64, steps int) []touch.Event {
	events := []touch.Event{{
		Touches:   twoTouchesAt(center, fromDist, start),
		Phase:     touch.PhaseBegan,
		Timestamp: start,
	}}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		ts := start + int64(f*float64(durationMs))
		events = append(events, touch.Event{
			Touches:   twoTouchesAt(center, fromDist+(toDist-fromDist)*f, ts),
			Phase:     touch.PhaseMoved,
			Timestamp: ts,
		})
	}
	end := start + durationMs
	events = append(events, touch.Event{
		Touches:   twoTouchesAt(center, toDist, end),
		Phase:     touch.PhaseEnded,
		Timestamp: end,
	})
	return events
}

// rotatedTouches returns two touches on a circle around c at the given
// angle, diametrically opposed.
func rotatedTouches(c touch.Point, radius, angle float64, ts int64) []touch.TouchPoint {
	dx := radius * math.Cos(angle)
	dy := radius * math.Sin(angle)
	return []touch.TouchPoint{
		At(1, c.X-dx, c.Y-dy, ts),
		At(2, c.X+dx, c.Y+dy, ts),
	}
}

// Rotation returns a two-finger gesture rotating from fromAngle to
// toAngle (radians) around a fixed center.
func Rotation(center touch.Point, radius, fromAngle, toAngle float64, start, durationMs int64, steps int) []touch.Event {
	events := []touch.Event{{
		Touches:   rotatedTouches(center, radius, fromAngle, start),
		Phase:     touch.PhaseBegan,
		Timestamp: start,
	}}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		ts := start + int64(f*float64(durationMs))
		events = append(events, touch.Event{
			Touches:   rotatedTouches(center, radius, fromAngle+(toAngle-fromAngle)*f, ts),
			Phase:     touch.PhaseMoved,
			Timestamp: ts,
		})
	}
	end := start + durationMs
	events = append(events, touch.Event{
		Touches:   rotatedTouches(center, radius, toAngle, end),
		Phase:     touch.PhaseEnded,
		Timestamp: end,
	})
	return events
}

// Pan returns a slow single-finger drag from one point to another,
// unhurried enough that swipe recognizers reject it.
func Pan(from, to touch.Point, start, durationMs int64, steps int) []touch.Event {
	return Swipe(from, to, start, durationMs, steps)
}
