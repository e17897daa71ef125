package field

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Descriptor is what a host needs to offer a field kind to editors.
type Descriptor struct {
	Kind        Kind   `json:"kind"`
	DisplayName string `json:"displayName"`
	Template    string `json:"template"`
	Multi       bool   `json:"multi"`
}

// DescriptorFor returns the descriptor of a built-in kind.
func DescriptorFor(kind Kind) Descriptor {
	return Descriptor{
		Kind:        kind,
		DisplayName: kind.DisplayName(),
		Template:    kind.Template(),
		Multi:       kind.Multi(),
	}
}

// Registry stores the field kinds a host exposes. Hosts create one at startup
// and hand it to whatever lists available field types.
type Registry struct {
	mu    sync.RWMutex
	kinds map[Kind]Descriptor
	order []Kind
}

// NewRegistry returns a registry with the four built-in kinds registered.
func NewRegistry() *Registry {
	reg := &Registry{kinds: make(map[Kind]Descriptor)}
	for _, kind := range Kinds() {
		reg.MustRegister(DescriptorFor(kind))
	}
	return reg
}

// Register adds a descriptor. Duplicate kinds return an error.
func (r *Registry) Register(desc Descriptor) error {
	if r == nil {
		return fmt.Errorf("field: registry is nil")
	}
	desc.Kind = Kind(strings.TrimSpace(string(desc.Kind)))
	if desc.Kind == "" {
		return fmt.Errorf("field: kind is required")
	}
	if desc.Template == "" {
		return fmt.Errorf("field: template is required for kind %q", desc.Kind)
	}
	if desc.DisplayName == "" {
		desc.DisplayName = desc.Kind.DisplayName()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.kinds == nil {
		r.kinds = make(map[Kind]Descriptor)
	}
	if _, exists := r.kinds[desc.Kind]; exists {
		return fmt.Errorf("field: kind %q already registered", desc.Kind)
	}
	r.kinds[desc.Kind] = desc
	r.order = append(r.order, desc.Kind)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(desc Descriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor for kind.
func (r *Registry) Lookup(kind Kind) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.kinds[kind]
	return desc, ok
}

// Resolve parses name and returns the registered descriptor.
func (r *Registry) Resolve(name string) (Descriptor, error) {
	kind, err := ParseKind(name)
	if err != nil {
		kind = Kind(strings.TrimSpace(name))
	}
	desc, ok := r.Lookup(kind)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return desc, nil
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.kinds[kind])
	}
	return out
}

// List returns the registered kind names sorted alphabetically.
func (r *Registry) List() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.kinds))
	for kind := range r.kinds {
		names = append(names, string(kind))
	}
	sort.Strings(names)
	return names
}
