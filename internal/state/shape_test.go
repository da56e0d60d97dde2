package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectBetweenNormalizesCorners(t *testing.T) {
	r := RectBetween(Point{X: 10, Y: 10}, Point{X: 50, Y: 40})
	assert.Equal(t, Rect{X: 10, Y: 10, Width: 40, Height: 30}, r)

	// Dragging up-left gives the same box.
	r = RectBetween(Point{X: 50, Y: 40}, Point{X: 10, Y: 10})
	assert.Equal(t, Rect{X: 10, Y: 10, Width: 40, Height: 30}, r)
}

func TestRectBetweenDegenerateDrag(t *testing.T) {
	r := RectBetween(Point{X: 5, Y: 5}, Point{X: 5, Y: 5})
	assert.Equal(t, Rect{X: 5, Y: 5}, r)
	assert.GreaterOrEqual(t, r.Width, float32(0))
	assert.GreaterOrEqual(t, r.Height, float32(0))
}

func TestPathBounds(t *testing.T) {
	path := []Point{{0, 0}, {5, 5}, {10, 0}}
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 5}, PathBounds(path))

	assert.Equal(t, Rect{}, PathBounds(nil))
	assert.Equal(t, Rect{X: 3, Y: 7}, PathBounds([]Point{{3, 7}}))
}

func TestNewFreehand(t *testing.T) {
	path := []Point{{0, 0}, {5, 5}, {10, 0}}
	s, ok := NewFreehand(path, color.Black)
	require.True(t, ok)

	assert.Equal(t, KindFreehand, s.Kind)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 5}, s.Bounds)
	assert.Equal(t, path, s.Points, "stored path must match the recorded points exactly, in order")
	assert.NotEmpty(t, s.ID)

	// The shape keeps its own copy of the path.
	path[0] = Point{X: 99, Y: 99}
	assert.Equal(t, Point{X: 0, Y: 0}, s.Points[0])
}

func TestNewFreehandEmptyPath(t *testing.T) {
	_, ok := NewFreehand(nil, color.Black)
	assert.False(t, ok, "empty path must not produce a shape")
}

func TestNewShapeRectangle(t *testing.T) {
	s := NewShape(KindRectangle, Point{X: 10, Y: 10}, Point{X: 50, Y: 40}, color.Black)
	assert.Equal(t, KindRectangle, s.Kind)
	assert.Equal(t, Rect{X: 10, Y: 10, Width: 40, Height: 30}, s.Bounds)
	assert.Nil(t, s.Points, "box shapes carry no path")
}

func TestNewShapeCircleBounds(t *testing.T) {
	s := NewShape(KindCircle, Point{}, Point{X: 20, Y: 40}, color.Black)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 20, Height: 40}, s.Bounds)
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "freehand", KindFreehand.String())
	assert.Equal(t, "rectangle", KindRectangle.String())
	assert.Equal(t, "circle", KindCircle.String())
	assert.Equal(t, "triangle", KindTriangle.String())
}

func TestShapeIDsUnique(t *testing.T) {
	a := NewShape(KindRectangle, Point{}, Point{X: 1, Y: 1}, color.Black)
	b := NewShape(KindRectangle, Point{}, Point{X: 1, Y: 1}, color.Black)
	assert.NotEqual(t, a.ID, b.ID)
}
