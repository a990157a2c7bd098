package main

import (
	"context"
	"runtime"
	"sync"

	"github.com/alnah/go-mdcontent"
)

// PageRenderer is the part of mdcontent.PageBuilder the batch needs.
type PageRenderer interface {
	Build(ctx context.Context, filename string) (*mdcontent.Page, error)
}

// Compile-time interface implementation check.
var _ PageRenderer = (*mdcontent.PageBuilder)(nil)

// Pool abstracts builder pool operations for testability.
type Pool interface {
	Acquire() (PageRenderer, error)
	Release(PageRenderer)
	Size() int
}

// BuilderPool hands out page builders to render workers, one per worker.
// Builders are created lazily on first acquire.
type BuilderPool struct {
	size    int
	newFn   func() (PageRenderer, error)
	idle    chan PageRenderer
	mu      sync.Mutex
	created int
	closed  bool
}

// NewBuilderPool creates a pool with capacity for n builders made by newFn.
func NewBuilderPool(n int, newFn func() (PageRenderer, error)) *BuilderPool {
	if n < 1 {
		n = 1
	}

	return &BuilderPool{
		size:  n,
		newFn: newFn,
		idle:  make(chan PageRenderer, n),
	}
}

// Compile-time check that BuilderPool implements Pool.
var _ Pool = (*BuilderPool)(nil)

// Acquire gets a builder from the pool, creating one if needed.
// Blocks if all builders are in use. Returns ErrPoolClosed once Close has
// been called, including to callers already waiting.
func (p *BuilderPool) Acquire() (PageRenderer, error) {
	select {
	case b, ok := <-p.idle:
		if !ok {
			return nil, ErrPoolClosed
		}
		return b, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		b, err := p.newFn()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return b, nil
	}
	p.mu.Unlock()

	b, ok := <-p.idle
	if !ok {
		return nil, ErrPoolClosed
	}
	return b, nil
}

// Release returns a builder to the pool.
func (p *BuilderPool) Release(b PageRenderer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.idle <- b
	}
}

// Close stops accepting released builders.
func (p *BuilderPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.closed = true
		close(p.idle)
	}
}

// Size returns the pool capacity.
func (p *BuilderPool) Size() int {
	return p.size
}

// resolvePoolSize determines the worker count.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers, jobs int) int {
	n := flagWorkers
	if n <= 0 {
		// GOMAXPROCS is adjusted by automaxprocs for containers
		n = runtime.GOMAXPROCS(0)
	}
	if n > MaxWorkers {
		n = MaxWorkers
	}
	if jobs > 0 && n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}
