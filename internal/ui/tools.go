package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/state"
	"SketchPad/internal/theme"
)

// Tool identifies the active drawing tool.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolRectangle
	ToolCircle
	ToolTriangle
)

func (t Tool) String() string {
	switch t {
	case ToolEraser:
		return "eraser"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolTriangle:
		return "triangle"
	default:
		return "pen"
	}
}

// shapeKind maps a shape tool onto its committed kind.
func (t Tool) shapeKind() state.ShapeKind {
	switch t {
	case ToolRectangle:
		return state.KindRectangle
	case ToolCircle:
		return state.KindCircle
	case ToolTriangle:
		return state.KindTriangle
	}
	return state.KindFreehand
}

// colorSwatch is a small tappable square used for the drawing palette.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill := canvas.NewRectangle(s.Color)
	fill.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(fill, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Drawing colors offered by the toolbar.
var drawingColors = []color.Color{
	color.Black,
	color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}, // red
	color.NRGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF}, // green
	color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}, // blue
	color.NRGBA{R: 0xED, G: 0x6C, B: 0x02, A: 0xFF}, // orange
}

// NewToolbar builds the tool selector, color palette, clear and theme-toggle
// row. It has no logic of its own beyond invoking the board and theme state.
func NewToolbar(a fyne.App, sketch *BoardWidget, board *state.Board, themes *theme.Manager) fyne.CanvasObject {
	order := []Tool{ToolPen, ToolEraser, ToolRectangle, ToolCircle, ToolTriangle}
	buttons := make(map[Tool]*widget.Button, len(order))

	highlight := func(active Tool) {
		for tool, btn := range buttons {
			if tool == active {
				btn.Importance = widget.HighImportance
			} else {
				btn.Importance = widget.MediumImportance
			}
			btn.Refresh()
		}
	}

	toolBox := container.NewHBox()
	for _, tool := range order {
		tool := tool
		btn := widget.NewButton(tool.String(), func() {
			sketch.SetTool(tool)
			highlight(tool)
		})
		buttons[tool] = btn
		toolBox.Add(btn)
	}
	highlight(ToolPen)

	colorBox := container.NewHBox()
	for _, c := range drawingColors {
		colorBox.Add(newColorSwatch(c, sketch.SetColor))
	}

	clearBtn := widget.NewButtonWithIcon("Clear", fynetheme.DeleteIcon(), func() {
		board.Clear()
	})

	var themeBtn *widget.Button
	themeBtn = widget.NewButtonWithIcon("Dark", fynetheme.ColorPaletteIcon(), func() {
		themes.Toggle()
		// Re-installing the theme restyles every widget.
		a.Settings().SetTheme(&theme.AppTheme{Manager: themes})
		if themes.Variant() == theme.Dark {
			themeBtn.SetText("Light")
		} else {
			themeBtn.SetText("Dark")
		}
	})

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolBox,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		clearBtn,
		themeBtn,
		layout.NewSpacer(),
	)
}
