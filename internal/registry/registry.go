// Package registry provides a global registry for terminal shells.
// Shells register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownShell is returned by Create for names nobody registered.
var ErrUnknownShell = errors.New("registry: unknown shell")

// Shell runs one interactive Flappy Dragon session on a terminal.
// Shells own timing, input mapping and drawing; the game itself stays pure.
type Shell interface {
	// Name returns the identifier used on the command line (e.g., "tea").
	Name() string

	// Description returns a one-line summary for `dragon shells`.
	Description() string

	// Run blocks until the player quits or ctx is cancelled.
	Run(ctx context.Context, s Session) error
}

// ShellInfo contains metadata about a registered shell.
type ShellInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a shell.
type Factory func() Shell

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a shell factory to the registry.
// Typically called from a shell package's init() function.
// Panics if a shell with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: shell %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered shells, sorted by name.
func List() []ShellInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShellInfo, 0, len(factories))
	for name := range factories {
		result = append(result, ShellInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new shell by name.
func Create(name string) (Shell, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownShell, name)
	}

	return f(), nil
}

// Exists checks if a shell with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
