package state

import "log"

// Board is the committed shape sequence. It is append-only: shapes are never
// edited or removed individually, the sequence only grows or resets to empty.
// All access happens on the UI event loop, so no locking is needed.
type Board struct {
	shapes []Shape

	// OnChange is invoked after every mutation so the owning widget can
	// repaint the full scene.
	OnChange func()
}

func NewBoard() *Board {
	return &Board{shapes: make([]Shape, 0)}
}

// Append adds a shape to the end of the sequence. It cannot fail.
func (b *Board) Append(s Shape) {
	b.shapes = append(b.shapes, s)
	log.Printf("[board] committed %s %s (%d total)", s.Kind, s.ID, len(b.shapes))
	b.changed()
}

// Clear empties the sequence. Idempotent.
func (b *Board) Clear() {
	if n := len(b.shapes); n > 0 {
		log.Printf("[board] cleared %d shapes", n)
	}
	b.shapes = b.shapes[:0]
	b.changed()
}

// Shapes returns a copy of the committed sequence in append order.
func (b *Board) Shapes() []Shape {
	out := make([]Shape, len(b.shapes))
	copy(out, b.shapes)
	return out
}

func (b *Board) Len() int {
	return len(b.shapes)
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
