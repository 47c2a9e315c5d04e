package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// HandleEvents applies one tick's worth of input to the snake in arrival
// order. Directional key-downs become pending directions (reversals are
// dropped by the snake); unknown keys are ignored. Returns true as soon as
// a quit event is seen; events after it are discarded.
func HandleEvents(events []core.Event, s *Snake) (quit bool) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			return true
		case core.EventKeyDown:
			if d, ok := ev.Key.Direction(); ok {
				s.SetPendingDirection(d)
			}
		}
	}
	return false
}
