// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and run them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// ErrUnknown is returned by Create for an unregistered frontend.
var ErrUnknown = errors.New("registry: unknown frontend")

// Options carries everything a frontend needs to run the game.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Images  *assets.Images
	// Sounds is nil when audio is disabled.
	Sounds *assets.Sounds
	Logger *log.Logger
}

// Frontend presents the game on some output: a desktop window, a terminal.
// Frontends own the clock, input polling and presentation; the game itself
// is pure logic.
type Frontend interface {
	// ID returns a unique identifier (e.g., "desktop", "terminal").
	ID() string

	// Title returns a human-readable description for listings.
	Title() string

	// Run blocks until the player quits or ctx is cancelled.
	Run(ctx context.Context, opts Options) error
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// The error wraps ErrUnknown if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
