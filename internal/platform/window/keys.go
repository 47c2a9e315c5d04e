package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// keyAliases rewrites ebiten key names to the spelling used in the
// key binding configuration.
var keyAliases = map[string]string{
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
	"escape":     "esc",
	"space":      " ",
}

// keyName returns the configuration name of k, e.g. "up", "w" or "ctrl+c".
func keyName(k ebiten.Key, ctrl bool) string {
	name := strings.ToLower(k.String())
	name = strings.TrimPrefix(name, "digit")
	if alias, ok := keyAliases[name]; ok {
		name = alias
	}
	if ctrl && len(name) == 1 && name != " " {
		name = "ctrl+" + name
	}
	return name
}

// translate converts freshly pressed keys into game events. Unbound keys
// are dropped.
func translate(keys []ebiten.Key, ctrl bool, kb config.KeyBindings) []core.Event {
	var events []core.Event
	for _, k := range keys {
		if ev, ok := kb.EventFor(keyName(k, ctrl)); ok {
			events = append(events, ev)
		}
	}
	return events
}
