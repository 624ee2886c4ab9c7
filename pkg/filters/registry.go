package filters

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps reverse-DNS-style names to filter factories. It is safe
// for concurrent use; registration typically happens once at startup
// but the management plane may add factories later.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FilterFactory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]FilterFactory)}
}

// Register adds a factory under its name. Registering a second factory
// under the same name replaces the first.
func (r *Registry) Register(factory FilterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[factory.Name()] = factory
}

// Factory returns the factory registered under name.
func (r *Registry) Factory(name string) (FilterFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return factory, nil
}

// CreateFilter instantiates the named filter with the given arguments.
func (r *Registry) CreateFilter(name string, args CreateFilterArgs) (Filter, error) {
	factory, err := r.Factory(name)
	if err != nil {
		return nil, err
	}
	filter, err := factory.CreateFilter(args)
	if err != nil {
		return nil, fmt.Errorf("creating filter %q: %w", name, err)
	}
	return filter, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
