package engine

import "fmt"

// Descriptor names an algorithm and knows how to build a fresh instance.
type Descriptor struct {
	Name string
	New  func() Engine
}

// Registry is a name-keyed catalog of algorithms. It is an explicit,
// process-scoped object passed by reference through the harness and scorer;
// it is populated once at startup and append-only afterwards, so readers
// need no synchronization.
type Registry struct {
	order  []string
	byName map[string]Descriptor
}

// NewRegistry builds a registry from the given descriptors, preserving their
// order.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{byName: make(map[string]Descriptor)}
	for _, d := range descs {
		r.Register(d)
	}
	return r
}

// Register adds a descriptor. Registration is idempotent by name: a duplicate
// overwrites the existing entry in place, keeping its original position.
func (r *Registry) Register(d Descriptor) {
	if _, ok := r.byName[d.Name]; !ok {
		r.order = append(r.order, d.Name)
	}
	r.byName[d.Name] = d
}

// Descriptors returns all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered algorithms.
func (r *Registry) Len() int {
	return len(r.order)
}

// New instantiates the named algorithm, or fails with ErrUnknownAlgorithm.
func (r *Registry) New(name string) (Engine, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return d.New(), nil
}

// DefaultRegistry returns a registry holding every built-in algorithm, in
// canonical order. The hyperscan entry resolves to a stub reporting
// ErrNotImplemented on builds without the Hyperscan library.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Descriptor{Name: "naive", New: func() Engine { return Naive{} }},
		Descriptor{Name: "kmp", New: func() Engine { return KMP{} }},
		Descriptor{Name: "rabin-karp", New: func() Engine { return RabinKarp{} }},
		Descriptor{Name: "boyer-moore", New: func() Engine { return BoyerMoore{} }},
		Descriptor{Name: "hybrid", New: func() Engine { return Hybrid{} }},
		Descriptor{Name: "regexp", New: func() Engine { return Regexp{} }},
		Descriptor{Name: "hyperscan", New: func() Engine { return Hyperscan{} }},
	)
}
