// Package registry provides a global registry for game backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Player runs a complete game session on one backend and returns when the
// player quits, the context ends or the backend fails.
type Player interface {
	Play(ctx context.Context) error
}

// Options carries everything a backend needs to start a session.
type Options struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Factory creates a Player for the given options.
type Factory func(opts Options) (Player, error)

// Info contains metadata about a registered backend.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	entries[name] = entry{
		info:    Info{Name: name, Description: description},
		factory: f,
	}
}

// List returns information about all registered backends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a Player on the named backend.
// Returns an error if the backend is not registered.
func Create(name string, opts Options) (Player, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	p, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", name, err)
	}
	return p, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
