// Package registry provides a global registry for dot-rush mode
// factories. Modes register themselves in init() functions, so the
// platform and CLI discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dot-rush/internal/core"
)

// Game is the contract every playable mode implements. Modes contain
// pure logic with no platform dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the unique mode identifier (e.g. "classic", "zen").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the session. Called once at start and
	// again on restart after game over. The RuntimeConfig provides
	// screen dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. Input is
	// abstracted to platform-level actions (movement, tap, pause).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current session state (score, game over, paused).
	State() core.GameState
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry. Typically called from a
// mode's init() function. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Titles are resolved once via a throwaway instance.
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new mode by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
