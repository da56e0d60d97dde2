package state

import (
	"image/color"

	"github.com/google/uuid"
)

// ShapeKind discriminates the committed shape variants.
type ShapeKind int

const (
	KindFreehand ShapeKind = iota
	KindRectangle
	KindCircle
	KindTriangle
)

func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	default:
		return "freehand"
	}
}

// Point is a canvas-local position, origin top-left. Points may lie outside
// the visible surface transiently while a drag runs past an edge.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis-aligned bounding box. Width and Height are never negative.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// RectBetween returns the box spanned by two opposite corners, in any order.
func RectBetween(a, b Point) Rect {
	x, w := span(a.X, b.X)
	y, h := span(a.Y, b.Y)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func span(a, b float32) (min, extent float32) {
	if a <= b {
		return a, b - a
	}
	return b, a - b
}

// PathBounds returns the min/max box of a stroke path.
// An empty path yields the zero Rect.
func PathBounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Shape is one committed drawing. Color and geometry are fixed at creation.
// Points is populated only for KindFreehand; the box kinds derive their
// rendering purely from Bounds.
type Shape struct {
	ID     string
	Kind   ShapeKind
	Color  color.Color
	Bounds Rect
	Points []Point
}

func newID() string {
	return uuid.New().String()[:8]
}

// NewFreehand builds a freehand shape from a recorded stroke path. The bounds
// are derived from the path. Returns ok=false for an empty path.
func NewFreehand(points []Point, c color.Color) (Shape, bool) {
	if len(points) == 0 {
		return Shape{}, false
	}
	path := make([]Point, len(points))
	copy(path, points)
	return Shape{
		ID:     newID(),
		Kind:   KindFreehand,
		Color:  c,
		Bounds: PathBounds(path),
		Points: path,
	}, true
}

// NewShape builds a rectangle, circle or triangle from the drag anchor and the
// final pointer position.
func NewShape(kind ShapeKind, anchor, end Point, c color.Color) Shape {
	return Shape{
		ID:     newID(),
		Kind:   kind,
		Color:  c,
		Bounds: RectBetween(anchor, end),
	}
}
