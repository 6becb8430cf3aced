package gesture

import "github.com/ayusman/mudra/internal/touch"

// TapRecognizer recognizes single, double and triple taps. Successive taps
// chain into a count as long as each lands within the configured interval
// and distance of the previous one; the recognizer emits exactly once, when
// the chain reaches requiredTaps.
type TapRecognizer struct {
	core
	requiredTaps int

	// Tap chain state, surviving the per-attempt reset.
	tapCount    int
	lastTapTime int64
	lastTapPos  touch.Point
}

// NewTapRecognizer creates a tap recognizer requiring the given number of
// consecutive taps. Counts outside {1,2,3} fall back to the single-tap
// gesture type.
func NewTapRecognizer(requiredTaps int, config Config, cb Callback) *TapRecognizer {
	r := &TapRecognizer{
		core:         newCore(typeForTapCount(requiredTaps), config),
		requiredTaps: requiredTaps,
	}
	r.callback = cb
	return r
}

func typeForTapCount(n int) Type {
	switch n {
	case 2:
		return TypeDoubleTap
	case 3:
		return TypeTripleTap
	default:
		return TypeTap
	}
}

// maxChainInterval returns the inter-tap interval bound for this
// recognizer's tap count.
func (r *TapRecognizer) maxChainInterval() int64 {
	if r.requiredTaps >= 3 {
		return r.config.TripleTapMaxIntervalMs
	}
	return r.config.DoubleTapMaxIntervalMs
}

// HandleTouch advances the tap state machine with one touch event.
func (r *TapRecognizer) HandleTouch(ev touch.Event) {
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
		r.state = StatePossible

	case touch.PhaseMoved:
		p := ev.Primary()
		r.currentPos = p.Point
		// Too much travel disqualifies the attempt, but the verdict is
		// deferred to the ended phase so the chain resets exactly once.
		if r.state == StatePossible && p.Distance(r.startPos) > r.config.TapMaxDistance {
			r.state = StateFailed
		}

	case touch.PhaseEnded:
		r.handleEnded(ev)

	case touch.PhaseCancelled:
		r.state = StateCancelled
		r.Reset()
	}
}

func (r *TapRecognizer) handleEnded(ev touch.Event) {
	if r.state == StateFailed {
		r.Reset()
		return
	}

	pos := ev.Primary().Point
	now := ev.Timestamp

	// Step 1: the touch itself must have been quick enough.
	if now-r.startTime > r.config.TapMaxDurationMs {
		r.state = StateFailed
		r.Reset()
		return
	}

	// Step 2: a stale chain restarts the count at this tap.
	if r.tapCount > 0 && now-r.lastTapTime > r.maxChainInterval() {
		r.tapCount = 0
	}

	// Step 3: a chain that wandered too far restarts too.
	if r.tapCount > 0 && pos.Distance(r.lastTapPos) > 2*r.config.TapMaxDistance {
		r.tapCount = 0
	}

	// Step 4: count this tap.
	r.tapCount++
	r.lastTapTime = now
	r.lastTapPos = pos

	// Step 5: emit once the chain is complete.
	if r.tapCount >= r.requiredTaps {
		r.state = StateEnded
		r.emit(Data{Tap: &TapData{TapCount: r.tapCount, Position: pos}}, now)
		r.Reset()
		return
	}

	// Chain in progress: clear the attempt, keep the chain.
	r.reset()
}

// Reset returns the recognizer to possible and clears the tap chain.
func (r *TapRecognizer) Reset() {
	r.reset()
	r.tapCount = 0
	r.lastTapTime = 0
	r.lastTapPos = touch.Point{}
}

// TapCount returns the number of taps accumulated in the current chain.
func (r *TapRecognizer) TapCount() int {
	return r.tapCount
}
