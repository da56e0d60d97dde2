package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/state"
	"SketchPad/internal/theme"
)

const (
	strokeWidth  = 2
	eraserRadius = 10
)

// BoardWidget is the interactive drawing surface. It translates pointer
// events into shape commits on the Board and repaints the full scene on
// every change.
type BoardWidget struct {
	widget.BaseWidget

	board  *state.Board
	themes *theme.Manager

	tool         Tool
	currentColor color.Color

	// One gesture at a time: idle until MouseDown, dragging until the
	// matching MouseUp (or MouseOut, which commits the same way).
	dragging bool
	path     []state.Point
	anchor   state.Point

	// Erase stamps are raster-only paint: they are never committed and are
	// dropped whenever the scene is rebuilt after a commit, clear or theme
	// toggle, like pixels lost under a full redraw.
	stamps []state.Point

	surface fyne.Size
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board, themes *theme.Manager) *BoardWidget {
	b := &BoardWidget{
		board:        board,
		themes:       themes,
		tool:         ToolPen,
		currentColor: color.Black,
		surface:      fyne.NewSize(800, 500),
	}
	board.OnChange = b.sceneChanged
	themes.OnChange = b.sceneChanged
	b.ExtendBaseWidget(b)
	return b
}

// SetSurfaceSize fixes the drawing surface size. It is called once at mount
// and never again; later window resizes do not reach the surface.
func (b *BoardWidget) SetSurfaceSize(size fyne.Size) {
	b.surface = size
}

func (b *BoardWidget) SetTool(t Tool) {
	b.tool = t
}

func (b *BoardWidget) Tool() Tool {
	return b.tool
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.currentColor = c
	b.Refresh()
}

func (b *BoardWidget) Color() color.Color {
	return b.currentColor
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	pos := state.Point{X: e.Position.X, Y: e.Position.Y}
	if b.tool == ToolEraser {
		// Stateless per event: stamp immediately, never enter dragging.
		b.stamps = append(b.stamps, pos)
		b.Refresh()
		return
	}
	b.dragging = true
	b.anchor = pos
	b.path = []state.Point{pos}
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	pos := state.Point{X: e.Position.X, Y: e.Position.Y}
	if b.tool == ToolEraser {
		b.stamps = append(b.stamps, pos)
		b.Refresh()
		return
	}
	if !b.dragging {
		return
	}
	// Shape tools keep the whole path too; only the last point feeds the
	// bounding box.
	b.path = append(b.path, pos)
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.dragging {
		return
	}
	b.commit()
}

// MouseOut commits exactly like MouseUp, using the last recorded position.
// A drag that leaves the surface therefore commits a shape clipped to the
// last in-bounds point rather than being cancelled.
func (b *BoardWidget) MouseOut() {
	if !b.dragging {
		return
	}
	log.Printf("[ui] pointer left surface mid-drag, committing %s", b.tool)
	b.commit()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) commit() {
	b.dragging = false
	switch b.tool {
	case ToolPen:
		if s, ok := state.NewFreehand(b.path, b.currentColor); ok {
			b.board.Append(s)
		}
	case ToolRectangle, ToolCircle, ToolTriangle:
		if len(b.path) > 0 {
			end := b.path[len(b.path)-1]
			b.board.Append(state.NewShape(b.tool.shapeKind(), b.anchor, end, b.currentColor))
		}
	}
	b.path = nil
	b.Refresh()
}

// previewShape derives the live in-progress shape from the current path and
// anchor. ok is false when there is nothing to preview.
func (b *BoardWidget) previewShape() (state.Shape, bool) {
	if !b.dragging || len(b.path) == 0 {
		return state.Shape{}, false
	}
	switch b.tool {
	case ToolPen:
		return state.Shape{
			Kind:   state.KindFreehand,
			Color:  b.currentColor,
			Bounds: state.PathBounds(b.path),
			Points: b.path,
		}, true
	case ToolRectangle, ToolCircle, ToolTriangle:
		end := b.path[len(b.path)-1]
		return state.Shape{
			Kind:   b.tool.shapeKind(),
			Color:  b.currentColor,
			Bounds: state.RectBetween(b.anchor, end),
		}, true
	}
	return state.Shape{}, false
}

// sceneChanged runs after any Board mutation or theme toggle. The rebuild
// repaints committed shapes only, so erase stamps are lost here.
func (b *BoardWidget) sceneChanged() {
	b.stamps = nil
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.rebuild()
	return r
}
