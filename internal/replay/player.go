package replay

import (
	"github.com/ayusman/mudra/internal/gesture"
)

// Player runs recorded sessions through its own recognizer set and
// collects the recognized gesture events. The set is reset before every
// play, so playing the same session twice yields identical results.
//
// A player never drives the long press polling path; recorded streams
// carry stationary phase events with their original timestamps, which is
// what keeps playback deterministic.
type Player struct {
	manager *gesture.Manager

	// OnEvent, when set, observes each recognized event as it is emitted
	// during a play, before the collected slice is returned.
	OnEvent gesture.Callback

	collected []gesture.Event
}

// NewPlayer creates a player with the standard recognizer complement
// tuned by the given config.
func NewPlayer(config gesture.Config) *Player {
	p := &Player{}
	p.manager = gesture.NewDefaultManager(config, p.collect)
	return p
}

func (p *Player) collect(e gesture.Event) {
	p.collected = append(p.collected, e)
	if p.OnEvent != nil {
		p.OnEvent(e)
	}
}

// Play validates the session and feeds its events through the recognizer
// set in order, returning every gesture event recognized along the way.
func (p *Player) Play(s *Session) ([]gesture.Event, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p.manager.ResetAll()
	p.collected = nil

	for _, ev := range s.Events {
		p.manager.HandleTouch(ev)
	}

	out := p.collected
	p.collected = nil
	return out, nil
}
