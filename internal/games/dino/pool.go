package dino

import "github.com/vovakirdan/capydino/internal/core"

// Body is the axis-aligned box shared by every scrolling entity.
type Body struct {
	X, Y float64
	W, H float64
}

// Rect returns the body as a collision rectangle.
func (b Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Offscreen reports whether the body has fully left the canvas on the left.
func (b Body) Offscreen() bool {
	return b.X+b.W < 0
}

// Pool holds entities that scroll from the right edge to the left and are
// dropped once they leave the canvas.
type Pool[T any] struct {
	items []T
	body  func(*T) *Body
}

// NewPool creates a pool. body gives access to an entity's Body.
func NewPool[T any](body func(*T) *Body) *Pool[T] {
	return &Pool[T]{
		items: make([]T, 0, 8),
		body:  body,
	}
}

// Add appends an entity.
func (p *Pool[T]) Add(v T) {
	p.items = append(p.items, v)
}

// Advance moves every entity left by dx and removes those whose right edge
// passed x=0. Survivors keep their insertion order.
func (p *Pool[T]) Advance(dx float64) {
	kept := p.items[:0]
	for i := range p.items {
		b := p.body(&p.items[i])
		b.X -= dx
		if !b.Offscreen() {
			kept = append(kept, p.items[i])
		}
	}
	// Release references held by the dropped tail
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
}

// Items returns the live entities. The slice must not be retained across
// calls to Advance.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Reset removes every entity.
func (p *Pool[T]) Reset() {
	clear(p.items)
	p.items = p.items[:0]
}

// Snapshot returns a copy of the live entities.
func (p *Pool[T]) Snapshot() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}
