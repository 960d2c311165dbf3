package lucid

import (
	"fmt"
	"slices"
	"sync"
)

// Registry indexes components by display name for documentation tooling.
//
// Registration is explicit: nothing is added at package init. Sub-components
// attached with WithChild are registered together with their parent.
type Registry struct {
	mu         sync.RWMutex
	components map[string]*Component
	order      []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]*Component)}
}

// Add registers components and their sub-components.
// Panics if two different components share a display name.
func (reg *Registry) Add(components ...*Component) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		reg.registerComponent(comp)
	}
}

func (reg *Registry) registerComponent(comp *Component) {
	if comp == nil {
		return
	}
	name := comp.DisplayName()
	if existing, ok := reg.components[name]; ok {
		if existing == comp {
			return
		}
		panic(fmt.Sprintf("lucid: display name collision for %q", name))
	}
	reg.components[name] = comp
	reg.order = append(reg.order, name)

	for _, child := range comp.ChildNames() {
		sub, _ := comp.Child(child)
		reg.registerComponent(sub)
	}
}

// Get returns the component registered under name.
func (reg *Registry) Get(name string) (*Component, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	comp, ok := reg.components[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return comp, nil
}

// Schema returns the full schema of the named component: its own entries
// followed by StandardSchema entries it does not redeclare.
func (reg *Registry) Schema(name string) (*Schema, error) {
	comp, err := reg.Get(name)
	if err != nil {
		return nil, err
	}
	props := comp.PropTypes().Props()
	for _, std := range StandardSchema.Props() {
		if !comp.PropTypes().Has(std.Name) {
			props = append(props, std)
		}
	}
	return NewSchema(props...), nil
}

// Names returns registered display names in registration order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return slices.Clone(reg.order)
}

// Components returns registered components in registration order.
func (reg *Registry) Components() []*Component {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	out := make([]*Component, len(reg.order))
	for i, name := range reg.order {
		out[i] = reg.components[name]
	}
	return out
}
