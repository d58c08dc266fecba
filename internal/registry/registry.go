// Package registry provides a global registry of critter factories.
// Critter kinds register themselves in init() functions, allowing the engine
// and the configuration to spawn critters by name without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/menagerie/internal/core"
)

// Spawn holds the parameters a critter is created with.
// Kinds ignore the fields they have no use for.
type Spawn struct {
	Row    int
	Col    int
	Length int           // body length for segmented critters
	Delay  time.Duration // pacing delay for pacers
}

// Factory creates a new critter from spawn parameters.
type Factory func(s Spawn) core.Critter

// KindInfo contains metadata about a registered critter kind.
type KindInfo struct {
	Kind        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	kinds = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a critter factory to the registry.
// Typically called from a critter's init() function.
// Panics if a kind with the same name is already registered.
func Register(kind, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := kinds[kind]; exists {
		panic(fmt.Sprintf("registry: critter %q already registered", kind))
	}

	kinds[kind] = entry{factory: f, description: description}
}

// List returns information about all registered kinds, sorted by name.
func List() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(kinds))
	for kind, e := range kinds {
		result = append(result, KindInfo{
			Kind:        kind,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Create spawns a new critter of the given kind.
// Returns an error if the kind is not registered.
func Create(kind string, s Spawn) (core.Critter, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("registry: unknown critter %q", kind)
	}

	return e.factory(s), nil
}

// Exists checks if a critter kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := kinds[kind]
	return ok
}
