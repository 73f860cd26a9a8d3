// Package registry provides a global registry for game variants.
// Variants register themselves in init() functions, allowing the CLI and
// drivers to discover and build games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("unknown game")

// Options selects the configuration a variant is built from.
type Options struct {
	ConfigPath string // custom YAML file; empty uses the search order
	Difficulty string // easy, normal or hard; empty is normal

	// Resolved is a configuration previously returned in Game.Config.
	// When set, ConfigPath and Difficulty are ignored, which lets a
	// replay rebuild exactly the machine it was recorded on.
	Resolved []byte
}

// Game is a built variant, ready to Start.
type Game struct {
	Machine  *engine.Machine
	TickRate int    // ticks per second for real-time drivers
	Config   []byte // resolved configuration, YAML

	// Autopilot picks intents for headless runs. It only reads the session.
	Autopilot func(s *engine.Session) engine.Intents
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a variant from options.
type Factory func(opts Options) (*Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a game by its ID.
func Create(id string, opts Options) (*Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
