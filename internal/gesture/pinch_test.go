package gesture

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/touch"
	"github.com/ayusman/mudra/internal/touchtest"
)

func collectPinch() (*PinchRecognizer, *[]Event) {
	var got []Event
	r := NewPinchRecognizer(DefaultConfig(), func(e Event) {
		got = append(got, e)
	})
	return r, &got
}

func TestPinchOut(t *testing.T) {
	r, got := collectPinch()
	center := touch.Point{X: 200, Y: 300}

	for _, ev := range touchtest.Pinch(center, 100, 200, 0, 200, 4) {
		r.HandleTouch(ev)
	}

	if len(*got) < 3 {
		t.Fatalf("emitted %d events, want began + changes + ended", len(*got))
	}

	first := (*got)[0]
	if first.Type != TypePinch || first.State != StateBegan {
		t.Errorf("first event = %s/%s, want pinch/began", first.Type, first.State)
	}
	if first.Data.Pinch.Scale != 1.0 {
		t.Errorf("initial Scale = %v, want 1.0", first.Data.Pinch.Scale)
	}
	if first.Data.Pinch.Center != center {
		t.Errorf("Center = %v, want %v", first.Data.Pinch.Center, center)
	}

	last := (*got)[len(*got)-1]
	if last.State != StateEnded {
		t.Errorf("last event state = %s, want ended", last.State)
	}
	if math.Abs(last.Data.Pinch.Scale-2.0) > 1e-9 {
		t.Errorf("final Scale = %v, want 2.0", last.Data.Pinch.Scale)
	}

	for _, e := range (*got)[1 : len(*got)-1] {
		if e.State != StateChanged {
			t.Errorf("mid-gesture state = %s, want changed", e.State)
		}
	}
}

func TestPinchIn(t *testing.T) {
	r, got := collectPinch()

	for _, ev := range touchtest.Pinch(touch.Point{X: 200, Y: 300}, 200, 100, 0, 200, 4) {
		r.HandleTouch(ev)
	}

	last := (*got)[len(*got)-1]
	if math.Abs(last.Data.Pinch.Scale-0.5) > 1e-9 {
		t.Errorf("final Scale = %v, want 0.5", last.Data.Pinch.Scale)
	}
}

func TestPinchDebounce(t *testing.T) {
	r, got := collectPinch()
	center := touch.Point{X: 200, Y: 300}

	// Separation creeps from 100 to 101: a 1% change against a 2% debounce
	// threshold, so nothing but the initial began may be emitted.
	for _, ev := range touchtest.Pinch(center, 100, 101, 0, 200, 5) {
		if ev.Phase == touch.PhaseEnded {
			break
		}
		r.HandleTouch(ev)
	}

	if len(*got) != 1 {
		t.Fatalf("emitted %d events, want only began under debounce", len(*got))
	}
}

func TestPinchForcedEndOnTouchCountChange(t *testing.T) {
	r, got := collectPinch()
	center := touch.Point{X: 200, Y: 300}

	r.HandleTouch(touchtest.Began(0, twoTouchesHorizontal(center, 100, 0)...))
	r.HandleTouch(touchtest.Moved(50, twoTouchesHorizontal(center, 150, 50)...))

	emitted := len(*got)

	// Third finger lands: pinch must end exactly once, at the last scale.
	threeTouches := append(twoTouchesHorizontal(center, 150, 100), touchtest.At(3, 50, 50, 100))
	r.HandleTouch(touchtest.Moved(100, threeTouches...))

	if len(*got) != emitted+1 {
		t.Fatalf("forced end emitted %d extra events, want exactly 1", len(*got)-emitted)
	}
	last := (*got)[len(*got)-1]
	if last.State != StateEnded {
		t.Errorf("forced end state = %s, want ended", last.State)
	}
	if math.Abs(last.Data.Pinch.Scale-1.5) > 1e-9 {
		t.Errorf("forced end Scale = %v, want 1.5", last.Data.Pinch.Scale)
	}
	if r.initialDistance != 0 || r.previousDistance != 0 {
		t.Errorf("tracked distances = %v/%v after forced end, want 0/0",
			r.initialDistance, r.previousDistance)
	}

	// Follow-up single-touch events stay ignored.
	r.HandleTouch(touchtest.Moved(150, touchtest.At(1, 100, 100, 150)))
	if len(*got) != emitted+1 {
		t.Errorf("single-touch event after forced end emitted, total %d", len(*got))
	}
}

func TestPinchIgnoresSingleTouchWhenIdle(t *testing.T) {
	r, got := collectPinch()

	for _, ev := range touchtest.Tap(100, 100, 0) {
		r.HandleTouch(ev)
	}

	if len(*got) != 0 {
		t.Fatalf("emitted %d events for single-touch input, want 0", len(*got))
	}
	if r.State() != StatePossible {
		t.Errorf("state = %s, want possible", r.State())
	}
}

func TestPinchCancelled(t *testing.T) {
	r, got := collectPinch()
	center := touch.Point{X: 200, Y: 300}

	r.HandleTouch(touchtest.Began(0, twoTouchesHorizontal(center, 100, 0)...))
	emitted := len(*got)

	r.HandleTouch(touch.Event{
		Touches:   twoTouchesHorizontal(center, 100, 50),
		Phase:     touch.PhaseCancelled,
		Timestamp: 50,
	})

	if len(*got) != emitted {
		t.Fatalf("cancellation emitted %d extra events, want 0", len(*got)-emitted)
	}
	if r.State() != StatePossible || r.initialDistance != 0 {
		t.Errorf("state/initial = %s/%v, want possible/0", r.State(), r.initialDistance)
	}
}

// twoTouchesHorizontal mirrors the touchtest pair builder for tests that
// need to adjust the pair mid-sequence.
func twoTouchesHorizontal(c touch.Point, separation float64, ts int64) []touch.TouchPoint {
	half := separation / 2
	return []touch.TouchPoint{
		touchtest.At(1, c.X-half, c.Y, ts),
		touchtest.At(2, c.X+half, c.Y, ts),
	}
}
