package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrSealed is returned when registering into a sealed registry.
var ErrSealed = errors.New("render: registry is sealed")

// Registry stores template descriptors by ID. Lookups never fail: unknown IDs
// resolve to the default descriptor. Registries are typically populated at
// startup and then sealed, after which they are read-only.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
	order       []string
	defaultID   string
	sealed      bool
}

// NewRegistry creates an empty registry whose lookups fall back to
// defaultID once it is registered.
func NewRegistry(defaultID string) *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
		defaultID:   strings.TrimSpace(defaultID),
	}
}

// Register adds a descriptor. Duplicate IDs return an error.
func (r *Registry) Register(descriptor Descriptor) error {
	descriptor.ID = strings.TrimSpace(descriptor.ID)
	if descriptor.ID == "" {
		return fmt.Errorf("render: template id is required")
	}
	if descriptor.Render == nil {
		return fmt.Errorf("render: template %q has no render func", descriptor.ID)
	}
	if descriptor.Category == "" {
		return fmt.Errorf("render: template %q has no category", descriptor.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("render: register %q: %w", descriptor.ID, ErrSealed)
	}
	if _, exists := r.descriptors[descriptor.ID]; exists {
		return fmt.Errorf("render: template %q already registered", descriptor.ID)
	}

	r.descriptors[descriptor.ID] = descriptor
	r.order = append(r.order, descriptor.ID)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(descriptors ...Descriptor) {
	for _, descriptor := range descriptors {
		if err := r.Register(descriptor); err != nil {
			panic(err)
		}
	}
}

// Seal makes the registry read-only. It fails when the default template is
// not registered, since lookups could not honour their fallback.
func (r *Registry) Seal() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.descriptors[r.defaultID]; !ok {
		return fmt.Errorf("render: default template %q not registered", r.defaultID)
	}
	r.sealed = true
	return nil
}

// Sealed reports whether the registry is read-only.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Resolve returns the descriptor registered under id. The boolean is false
// when id is unknown, in which case the default descriptor is returned, or
// the first registered one when the default is missing. An empty registry
// yields a zero Descriptor.
func (r *Registry) Resolve(id string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if descriptor, ok := r.descriptors[strings.TrimSpace(id)]; ok {
		return descriptor, true
	}
	if descriptor, ok := r.descriptors[r.defaultID]; ok {
		return descriptor, false
	}
	// Unsealed registries may lack the default; use the first registration.
	if len(r.order) > 0 {
		return r.descriptors[r.order[0]], false
	}
	return Descriptor{}, false
}

// Lookup returns the descriptor for id, falling back to the default.
func (r *Registry) Lookup(id string) Descriptor {
	descriptor, _ := r.Resolve(id)
	return descriptor
}

// Has reports whether a template is registered under id.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.descriptors[strings.TrimSpace(id)]
	return ok
}

// DefaultID returns the fallback template ID.
func (r *Registry) DefaultID() string {
	return r.defaultID
}

// IDs returns the registered IDs in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// List returns descriptors grouped by category. Known categories come first
// in display order, followed by any others sorted by name; templates keep
// their registration order within a group.
func (r *Registry) List() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byCategory := make(map[Category][]Descriptor)
	for _, id := range r.order {
		descriptor := r.descriptors[id]
		byCategory[descriptor.Category] = append(byCategory[descriptor.Category], descriptor)
	}

	categories := Categories()
	known := make(map[Category]struct{}, len(categories))
	for _, category := range categories {
		known[category] = struct{}{}
	}
	var extra []Category
	for category := range byCategory {
		if _, ok := known[category]; !ok {
			extra = append(extra, category)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	groups := make([]Group, 0, len(byCategory))
	for _, category := range append(categories, extra...) {
		templates := byCategory[category]
		if len(templates) == 0 {
			continue
		}
		groups = append(groups, Group{
			Category:  category,
			Label:     category.Label(),
			Templates: templates,
		})
	}
	return groups
}
