package model

import "sync"

// PositionPool recycles the scratch slices Next uses to collect births and deaths
type PositionPool struct {
	pool sync.Pool
}

func NewPositionPool() *PositionPool {
	return &PositionPool{
		pool: sync.Pool{
			New: func() interface{} {
				s := make([]Position, 0, 64)
				return &s
			},
		},
	}
}

// Get retrieves an empty slice from the pool
func (p *PositionPool) Get() *[]Position {
	if p == nil {
		s := make([]Position, 0, 64)
		return &s
	}
	return p.pool.Get().(*[]Position)
}

// Put returns a slice to the pool, truncating it first
func (p *PositionPool) Put(s *[]Position) {
	if p == nil || s == nil {
		return
	}
	*s = (*s)[:0]
	p.pool.Put(s)
}
