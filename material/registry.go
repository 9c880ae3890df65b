// SPDX-License-Identifier: EPL-2.0

package material

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ik5/physaudio/modal"
)

const sizes = MaxSize + 1

// Registry maps (material, size) to modes and scrape materials to grains.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	modes  [numMaterials * sizes]modal.ModeSet
	grains [numScrapeMaterials]*Grain
}

// Option customizes a Registry while it is built.
type Option func(*builder)

type builder struct {
	modes    map[int]modal.ModeSet
	surfaces map[ScrapeMaterial][]float32
	err      error
}

// WithModes replaces the modes of (m, size). An empty set removes the entry
// so lookups for it fail with ErrMaterialNotFound.
func WithModes(m Material, size int, ms modal.ModeSet) Option {
	return func(b *builder) {
		if !m.valid() || size < 0 || size > MaxSize {
			b.err = fmt.Errorf("%w: %s size %d", ErrMaterialNotFound, m, size)
			return
		}
		b.modes[index(m, size)] = slices.Clone(ms)
	}
}

// WithSurface replaces the height profile a scrape material is derived from.
func WithSurface(s ScrapeMaterial, heights []float32) Option {
	return func(b *builder) {
		if !s.valid() {
			b.err = fmt.Errorf("%w: %s", ErrScrapeMaterialNotFound, s)
			return
		}
		if len(heights) < minSurface {
			b.err = fmt.Errorf("%w: %s has %d points", ErrSurfaceTooShort, s, len(heights))
			return
		}
		b.surfaces[s] = slices.Clone(heights)
	}
}

func index(m Material, size int) int {
	return int(m)*sizes + size
}

// NewRegistry builds the built-in tables and applies opts on top of them.
func NewRegistry(opts ...Option) (*Registry, error) {
	b := &builder{
		modes:    make(map[int]modal.ModeSet),
		surfaces: make(map[ScrapeMaterial][]float32),
	}
	for _, opt := range opts {
		opt(b)
		if b.err != nil {
			return nil, b.err
		}
	}

	r := &Registry{}
	for m := range numMaterials {
		for size := range sizes {
			i := index(m, size)
			if ms, ok := b.modes[i]; ok {
				r.modes[i] = ms
				continue
			}
			r.modes[i] = signatures[m].modes(size)
		}
	}
	for s := range numScrapeMaterials {
		g := buildGrain(s, b.surfaces[s])
		r.grains[s] = &g
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the shared registry of built-in tables.
func Default() *Registry {
	return defaultRegistry()
}

// Modes returns a copy of the modes of m at size.
func (r *Registry) Modes(m Material, size int) (modal.ModeSet, error) {
	if !r.Has(m, size) {
		return nil, fmt.Errorf("%w: %s size %d", ErrMaterialNotFound, m, size)
	}
	return slices.Clone(r.modes[index(m, size)]), nil
}

// Has reports whether (m, size) has modes.
func (r *Registry) Has(m Material, size int) bool {
	if !m.valid() || size < 0 || size > MaxSize {
		return false
	}
	return len(r.modes[index(m, size)]) > 0
}

// ScrapeGrain returns the grain descriptor of s.
func (r *Registry) ScrapeGrain(s ScrapeMaterial) (Grain, error) {
	if !s.valid() || r.grains[s] == nil {
		return Grain{}, fmt.Errorf("%w: %s", ErrScrapeMaterialNotFound, s)
	}
	return *r.grains[s], nil
}

// Fallback returns the modes of DefaultObject, used in place of a missing
// (material, size) entry.
func (r *Registry) Fallback() (modal.ModeSet, error) {
	d := DefaultObject()
	return r.Modes(d.Material, d.Size)
}
