// Package registry provides a global registry of display backends.
// Backends register themselves in init() functions, allowing the CLI to
// discover and open them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fb-breakout/internal/platform"
)

// Options configures a backend when it is opened.
type Options struct {
	// Path is the device node or output file, backend specific. Empty selects
	// the backend's default.
	Path string

	Logger *log.Logger
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory opens a display. Acquisition failures wrap platform.ErrResourceUnavailable.
type Factory func(opts Options) (platform.Display, error)

type entry struct {
	title   string
	factory Factory
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	backends[id] = entry{title: title, factory: f}
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for id, e := range backends {
		result = append(result, BackendInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create opens a display by backend ID.
// Returns an error if the ID is not registered or the backend fails to open.
func Create(id string, opts Options) (platform.Display, error) {
	mu.RLock()
	e, ok := backends[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown display %q", id)
	}

	d, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", id, err)
	}
	return d, nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[id]
	return ok
}
