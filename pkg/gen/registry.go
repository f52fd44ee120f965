package gen

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores backends by name, providing discovery and duplication
// safeguards. Hosts typically fill one at startup and treat it as read-only
// afterwards.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Backend),
	}
}

// Register adds a backend by its Name(). Duplicate names return an error.
func (r *Registry) Register(backend Backend) error {
	if backend == nil {
		return fmt.Errorf("gen: backend is required")
	}
	name := backend.Name()
	if name == "" {
		return fmt.Errorf("gen: backend name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("gen: backend %q already registered", name)
	}

	r.backends[name] = backend
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(backend Backend) {
	if err := r.Register(backend); err != nil {
		panic(err)
	}
}

// Get retrieves a backend by name.
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("gen: backend %q not found", name)
	}
	return backend, nil
}

// MustGet panics if the backend is missing.
func (r *Registry) MustGet(name string) Backend {
	backend, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return backend
}

// List returns a sorted list of backend names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a backend is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.backends[name]
	return ok
}
