package algo

import (
	"fmt"
	"slices"
)

// Registry is an immutable, ordered catalogue of variants of one kind.
// Positions are stable for the lifetime of the registry.
type Registry struct {
	kind     Kind
	variants []Variant
	byName   map[string]int
}

// NewRegistry validates variants and assigns their indexes in the given
// order.
func NewRegistry(kind Kind, variants ...Variant) (*Registry, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("%s registry has no variants", kind)
	}

	r := &Registry{
		kind:     kind,
		variants: make([]Variant, 0, len(variants)),
		byName:   make(map[string]int, len(variants)),
	}

	for i, v := range variants {
		if v.Name == "" {
			return nil, fmt.Errorf("variant %d has no name", i)
		}
		if _, dup := r.byName[v.Name]; dup {
			return nil, fmt.Errorf("duplicate variant name %q", v.Name)
		}
		if v.Forward == nil {
			return nil, fmt.Errorf("variant %s has no forward transform", v.Name)
		}
		if v.Bound == nil {
			return nil, fmt.Errorf("variant %s has no bound function", v.Name)
		}

		switch kind {
		case KindCompression:
			if v.Inverse == nil {
				return nil, fmt.Errorf("compression variant %s has no inverse", v.Name)
			}
		case KindHash:
			if v.Width <= 0 {
				return nil, fmt.Errorf("hash variant %s has no digest width", v.Name)
			}
		}

		v.Index = i
		r.byName[v.Name] = i
		r.variants = append(r.variants, v)
	}

	return r, nil
}

// Kind returns the kind of every variant in the registry.
func (r *Registry) Kind() Kind { return r.kind }

// Len returns the number of variants.
func (r *Registry) Len() int { return len(r.variants) }

// List returns the variants in registry order.
func (r *Registry) List() []Variant {
	return slices.Clone(r.variants)
}

// Get returns the variant at index i.
func (r *Registry) Get(i int) Variant {
	return r.variants[i]
}

// Lookup finds a variant by display name.
func (r *Registry) Lookup(name string) (Variant, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Variant{}, false
	}

	return r.variants[i], true
}

// Names returns the display names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.variants))
	for i, v := range r.variants {
		names[i] = v.Name
	}

	return names
}

// CheckInput fails with an *InputTooLargeError naming the first variant
// that cannot accept an input of n bytes.
func (r *Registry) CheckInput(n int) error {
	for _, v := range r.variants {
		if v.MaxInput > 0 && n > v.MaxInput {
			return &InputTooLargeError{Variant: v.Name, Size: n, Max: v.MaxInput}
		}
		if v.Bound(n) < 0 {
			return &InputTooLargeError{Variant: v.Name, Size: n}
		}
	}

	return nil
}

// MaxBound returns the destination size that holds the worst-case output
// of every variant for an input of n bytes. Callers check the input with
// CheckInput first.
func (r *Registry) MaxBound(n int) int {
	bound := 0
	for _, v := range r.variants {
		bound = max(bound, v.Bound(n))
	}

	return bound
}
