package env

import (
	"sort"
	"sync"

	"github.com/hpckit/schedgen/pkg/errors"
)

// Factory constructs an Environment.
type Factory func() Environment

// Registry maps dotted environment identifiers to factories with thread-safe
// operations. Identifiers are resolved explicitly; there is no dynamic
// attribute-path lookup.
type Registry struct {
	factories map[string]Factory

	mu sync.RWMutex
}

// NewRegistry creates a Registry pre-populated with all supported
// target-cluster environments.
func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]Factory{
			UnknownEnvironmentID:   NewUnknown,
			CometEnvironmentID:     NewComet,
			Stampede2EnvironmentID: NewStampede2,
			BridgesEnvironmentID:   NewBridges,
			FluxEnvironmentID:      NewFlux,
			TitanEnvironmentID:     NewTitan,
			EosEnvironmentID:       NewEos,
		},
	}
}

// Register adds or replaces a factory in this registry.
func (r *Registry) Register(identifier string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[identifier] = f
}

// Resolve constructs the environment for the given identifier. Unknown
// identifiers fail loudly; there is no fallback environment.
func (r *Registry) Resolve(identifier string) (Environment, error) {
	r.mu.RLock()
	f, ok := r.factories[identifier]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			"environment not registered",
			map[string]any{"environment": identifier})
	}
	return f(), nil
}

// ResolveOrDefault constructs the environment for the given identifier,
// falling back to def when the identifier is unknown and def is non-nil.
func (r *Registry) ResolveOrDefault(identifier string, def Environment) (Environment, error) {
	e, err := r.Resolve(identifier)
	if err != nil {
		if def != nil {
			return def, nil
		}
		return nil, err
	}
	return e, nil
}

// List returns all registered identifiers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered environments.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
