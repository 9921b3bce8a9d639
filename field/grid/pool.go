package grid

import (
	"sync"

	"github.com/cwbudde/algo-field/field/core"
)

// Pool provides sync.Pool-based Map reuse so builders rendering many tiles
// avoid reallocating cell storage.
type Pool[T core.Scalar, N core.Traits[T]] struct {
	pool sync.Pool
	cfg  core.MapConfig[T]
}

// NewPool returns a Pool whose maps are configured with opts.
func NewPool[T core.Scalar, N core.Traits[T]](opts ...core.MapOption[T]) *Pool[T, N] {
	p := &Pool[T, N]{cfg: core.ApplyMapOptions(opts...)}
	p.pool.New = func() any {
		return &Map[T, N]{}
	}
	return p
}

// Get returns a zeroed map of the requested dimensions with the pool's
// border value. Callers return it via Put when done.
func (p *Pool[T, N]) Get(width, height int) (*Map[T, N], error) {
	m := p.pool.Get().(*Map[T, N])
	m.borderValue = p.cfg.BorderValue
	m.maxWidth = p.cfg.MaxWidth
	m.maxHeight = p.cfg.MaxHeight
	if err := m.Allocate(width, height); err != nil {
		p.pool.Put(m)
		return nil, err
	}
	return m, nil
}

// Put returns a map to the pool for reuse.
// The caller must not use the map after calling Put.
func (p *Pool[T, N]) Put(m *Map[T, N]) {
	if m == nil {
		return
	}
	p.pool.Put(m)
}
