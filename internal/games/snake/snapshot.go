package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick    uint64
	Length  int
	Head    core.Point
	Dir     core.Direction
	Pending core.Direction
	HasNext bool
	Food    core.Point
	Deaths  int
	Longest int     // Longest length reached this run
	Outcome Outcome // Result of the most recent step
}

// Capture records the state of a snake and its food.
func Capture(s *Snake, f *Food) Snapshot {
	pending, hasNext := s.Pending()
	return Snapshot{
		Length:  s.Len(),
		Head:    s.Head(),
		Dir:     s.Direction(),
		Pending: pending,
		HasNext: hasNext,
		Food:    f.Position(),
	}
}

// String returns a compact one-line description.
func (sn Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d len=%d head=%v dir=%s food=%v", sn.Tick, sn.Length, sn.Head, sn.Dir, sn.Food)
	if sn.Deaths > 0 {
		fmt.Fprintf(&b, " deaths=%d", sn.Deaths)
	}
	return b.String()
}
