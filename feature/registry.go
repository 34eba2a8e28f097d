// registry.go implements the feature registration system.
//
// Registration order is significant: it is the order feature routes appear
// in the composed navigation tree, and the first registered Navigable
// feature becomes the console's landing page. Registering the same name
// twice panics, following database/sql.Register.

package feature

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Feature)
	order    []string // preserve registration order
)

// Register adds a feature to the registry.
func Register(f Feature) {
	mu.Lock()
	defer mu.Unlock()

	name := f.Name()
	if _, exists := registry[name]; exists {
		panic("feature already registered: " + name)
	}

	registry[name] = f
	order = append(order, name)
}

// All returns all registered features in registration order.
func All() []Feature {
	mu.RLock()
	defer mu.RUnlock()

	fs := make([]Feature, 0, len(order))
	for _, name := range order {
		fs = append(fs, registry[name])
	}
	return fs
}

// Get returns a specific feature by name, or nil if not found.
func Get(name string) Feature {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered features.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Feature)
	order = nil
}
