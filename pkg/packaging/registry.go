package packaging

import (
	"sort"
	"sync"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/pom"
)

// Registry is a lookup table of packaging providers keyed by ID.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]*Provider
	order     []string
}

// NewRegistry creates a registry holding the given providers.
func NewRegistry(providers ...*Provider) (*Registry, error) {
	r := &Registry{providers: make(map[string]*Provider)}
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a provider. IDs must be unique.
func (r *Registry) Register(p *Provider) error {
	if p == nil {
		return errors.Validation("provider is required")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[p.ID]; ok {
		return errors.Validation("packaging provider %q is already registered", p.ID)
	}
	r.providers[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// Lookup returns the provider registered under id.
func (r *Registry) Lookup(id string) (*Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.providers[id]; ok {
		return p, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "unknown packaging provider %q (available: %v)", id, r.sortedIDs())
}

// Providers returns all providers in registration order.
func (r *Registry) Providers() []*Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Provider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.providers[id])
	}
	return out
}

// Identify returns the provider that produced the given descriptor, based
// on the provider property stamped into it.
func (r *Registry) Identify(descriptor []byte) (*Provider, error) {
	info, err := pom.Inspect(descriptor)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, err, "decode descriptor")
	}
	id := info.ProviderID()
	if id == "" {
		return nil, errors.New(errors.ErrCodeNotFound, "descriptor has no %s property", pom.ProviderProperty)
	}
	return r.Lookup(id)
}

func (r *Registry) sortedIDs() []string {
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
