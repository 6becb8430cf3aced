package gesture

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/touch"
	"github.com/ayusman/mudra/internal/touchtest"
)

func collectRotation() (*RotationRecognizer, *[]Event) {
	var got []Event
	r := NewRotationRecognizer(DefaultConfig(), func(e Event) {
		got = append(got, e)
	})
	return r, &got
}

func TestNormalizeDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"small positive", 0.3, 0.3},
		{"small negative", -0.3, -0.3},
		{"wrap past positive pi", 6.0, 6.0 - 2*math.Pi},
		{"wrap past negative pi", -6.0, 2*math.Pi - 6.0},
		{"exact pi stays", math.Pi, math.Pi},
		{"exact negative pi wraps", -math.Pi, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeDelta(tt.delta)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("normalizeDelta(%v) = %v, want %v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestRotationWraparound(t *testing.T) {
	r, got := collectRotation()
	center := touch.Point{X: 200, Y: 300}

	// Two samples straddling the atan2 discontinuity: +3.0 rad then
	// -3.0 rad. The correct reading is a small positive rotation of
	// 2pi - 6.0, not a -6.0 jump.
	r.HandleTouch(touch.Event{
		Touches:   rotatedPair(center, 100, 3.0, 0),
		Phase:     touch.PhaseBegan,
		Timestamp: 0,
	})
	r.HandleTouch(touch.Event{
		Touches:   rotatedPair(center, 100, -3.0, 50),
		Phase:     touch.PhaseMoved,
		Timestamp: 50,
	})

	if len(*got) != 2 {
		t.Fatalf("emitted %d events, want began + changed", len(*got))
	}
	want := 2*math.Pi - 6.0
	gotAngle := (*got)[1].Data.Rotation.Angle
	if math.Abs(gotAngle-want) > 1e-9 {
		t.Errorf("accumulated Angle = %v, want %v", gotAngle, want)
	}
}

func TestRotationAccumulates(t *testing.T) {
	r, got := collectRotation()
	center := touch.Point{X: 200, Y: 300}

	for _, ev := range touchtest.Rotation(center, 100, 0, 0.8, 0, 200, 4) {
		r.HandleTouch(ev)
	}

	if len(*got) < 3 {
		t.Fatalf("emitted %d events, want began + changes + ended", len(*got))
	}
	first := (*got)[0]
	if first.Type != TypeRotation || first.State != StateBegan {
		t.Errorf("first event = %s/%s, want rotation/began", first.Type, first.State)
	}
	if first.Data.Rotation.Angle != 0 {
		t.Errorf("initial Angle = %v, want 0", first.Data.Rotation.Angle)
	}

	last := (*got)[len(*got)-1]
	if last.State != StateEnded {
		t.Errorf("last event state = %s, want ended", last.State)
	}
	if math.Abs(last.Data.Rotation.Angle-0.8) > 1e-9 {
		t.Errorf("final Angle = %v, want 0.8", last.Data.Rotation.Angle)
	}
}

func TestRotationDebounceAccumulatesSmallDeltas(t *testing.T) {
	r, got := collectRotation()
	center := touch.Point{X: 200, Y: 300}

	// Five 0.01 rad steps: each below the 0.05 threshold, but measured
	// against the last emitted angle they add up and fire once.
	for _, ev := range touchtest.Rotation(center, 100, 0, 0.05, 0, 100, 5) {
		if ev.Phase == touch.PhaseEnded {
			break
		}
		r.HandleTouch(ev)
	}

	if len(*got) != 2 {
		t.Fatalf("emitted %d events, want began + one change", len(*got))
	}
	gotAngle := (*got)[1].Data.Rotation.Angle
	if math.Abs(gotAngle-0.05) > 1e-9 {
		t.Errorf("accumulated Angle = %v, want 0.05", gotAngle)
	}
}

func TestRotationForcedEndOnTouchCountChange(t *testing.T) {
	r, got := collectRotation()
	center := touch.Point{X: 200, Y: 300}

	r.HandleTouch(touch.Event{Touches: rotatedPair(center, 100, 0, 0), Phase: touch.PhaseBegan, Timestamp: 0})
	r.HandleTouch(touch.Event{Touches: rotatedPair(center, 100, 0.5, 50), Phase: touch.PhaseMoved, Timestamp: 50})
	emitted := len(*got)

	// One finger lifts mid-rotation.
	r.HandleTouch(touchtest.Ended(100, touchtest.At(1, center.X, center.Y, 100)))

	if len(*got) != emitted+1 {
		t.Fatalf("forced end emitted %d extra events, want exactly 1", len(*got)-emitted)
	}
	last := (*got)[len(*got)-1]
	if last.State != StateEnded {
		t.Errorf("forced end state = %s, want ended", last.State)
	}
	if math.Abs(last.Data.Rotation.Angle-0.5) > 1e-9 {
		t.Errorf("forced end Angle = %v, want 0.5", last.Data.Rotation.Angle)
	}
	if r.initialAngle != 0 || r.totalRotation != 0 {
		t.Errorf("tracked angles = %v/%v after forced end, want 0/0",
			r.initialAngle, r.totalRotation)
	}
}

// rotatedPair places two touches diametrically opposed on a circle.
func rotatedPair(c touch.Point, radius, angle float64, ts int64) []touch.TouchPoint {
	dx := radius * math.Cos(angle)
	dy := radius * math.Sin(angle)
	return []touch.TouchPoint{
		touchtest.At(1, c.X-dx, c.Y-dy, ts),
		touchtest.At(2, c.X+dx, c.Y+dy, ts),
	}
}
