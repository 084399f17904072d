// Package registry provides a global registry for level factories.
// Levels register themselves in init() functions, allowing the platform
// to discover and instantiate levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/beat-arcade/internal/level"
)

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]level.Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from a level package's init() function.
// Panics if a level with the same ID is already registered.
func Register(id, title string, f level.Factory) {
	if err := Add(id, title, f); err != nil {
		panic(err)
	}
}

// Add is Register for levels discovered at runtime. It returns an error
// instead of panicking on a duplicate ID.
func Add(id, title string, f level.Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: level %q already registered", id)
	}
	if title == "" {
		title = id
	}

	factories[id] = f
	titles[id] = title
	return nil
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LevelInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Factory returns the factory registered under id.
// Returns an error if the level ID is not registered.
func Factory(id string) (level.Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}
	return f, nil
}

// Create builds a fresh level by its ID.
func Create(id string) (*level.Level, error) {
	f, err := Factory(id)
	if err != nil {
		return nil, err
	}
	return f(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// reset clears the registry. Used by tests.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	factories = make(map[string]level.Factory)
	titles = make(map[string]string)
}
