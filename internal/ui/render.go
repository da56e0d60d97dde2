package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"SketchPad/internal/state"
)

// boardRenderer rebuilds the complete scene object list on every refresh.
// No dirty-region tracking: committed shapes, the live preview and the erase
// stamps are all repainted together, which is fine at single-widget scale.
type boardRenderer struct {
	board   *BoardWidget
	objects []fyne.CanvasObject
}

var _ fyne.WidgetRenderer = (*boardRenderer)(nil)

func (r *boardRenderer) rebuild() {
	b := r.board
	pal := b.themes.Palette()

	objects := make([]fyne.CanvasObject, 0, 1+b.board.Len())

	bg := canvas.NewRectangle(pal.Surface)
	bg.StrokeColor = pal.Border
	bg.StrokeWidth = 1
	bg.Resize(b.surface)
	objects = append(objects, bg)

	for _, s := range b.board.Shapes() {
		objects = append(objects, shapeObjects(s)...)
	}

	// Live preview in the current color; the committed shape gets its own
	// copy of that color at commit time.
	if prev, ok := b.previewShape(); ok {
		objects = append(objects, shapeObjects(prev)...)
	}

	// Erase stamps paint over everything in the surface color.
	for _, p := range b.stamps {
		disc := canvas.NewCircle(pal.Surface)
		disc.Resize(fyne.NewSize(2*eraserRadius, 2*eraserRadius))
		disc.Move(fyne.NewPos(p.X-eraserRadius, p.Y-eraserRadius))
		objects = append(objects, disc)
	}

	r.objects = objects
}

// shapeObjects maps one shape onto stroke-only canvas primitives.
func shapeObjects(s state.Shape) []fyne.CanvasObject {
	box := s.Bounds
	switch s.Kind {
	case state.KindRectangle:
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = s.Color
		rect.StrokeWidth = strokeWidth
		rect.Resize(fyne.NewSize(box.Width, box.Height))
		rect.Move(fyne.NewPos(box.X, box.Y))
		return []fyne.CanvasObject{rect}

	case state.KindCircle:
		// Inscribed circle, never an ellipse: diameter is the shorter box
		// dimension, centered in the box.
		d := box.Width
		if box.Height < d {
			d = box.Height
		}
		circle := canvas.NewCircle(color.Transparent)
		circle.StrokeColor = s.Color
		circle.StrokeWidth = strokeWidth
		circle.Resize(fyne.NewSize(d, d))
		circle.Move(fyne.NewPos(box.X+(box.Width-d)/2, box.Y+(box.Height-d)/2))
		return []fyne.CanvasObject{circle}

	case state.KindTriangle:
		apex := fyne.NewPos(box.X+box.Width/2, box.Y)
		left := fyne.NewPos(box.X, box.Y+box.Height)
		right := fyne.NewPos(box.X+box.Width, box.Y+box.Height)
		return []fyne.CanvasObject{
			strokeLine(apex, left, s.Color),
			strokeLine(apex, right, s.Color),
			strokeLine(left, right, s.Color),
		}

	default: // freehand polyline
		if len(s.Points) < 2 {
			return nil
		}
		segments := make([]fyne.CanvasObject, 0, len(s.Points)-1)
		for i := 0; i < len(s.Points)-1; i++ {
			p1 := fyne.NewPos(s.Points[i].X, s.Points[i].Y)
			p2 := fyne.NewPos(s.Points[i+1].X, s.Points[i+1].Y)
			segments = append(segments, strokeLine(p1, p2, s.Color))
		}
		return segments
	}
}

func strokeLine(p1, p2 fyne.Position, c color.Color) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = strokeWidth
	line.Position1 = p1
	line.Position2 = p2
	return line
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Layout(fyne.Size) {}

func (r *boardRenderer) MinSize() fyne.Size {
	return r.board.surface
}

func (r *boardRenderer) Destroy() {}
