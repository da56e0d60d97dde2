package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"SketchPad/internal/state"
	"SketchPad/internal/theme"
)

const (
	windowWidth  = 1280
	windowHeight = 800

	// The drawing surface takes a fixed fraction of the window, chosen once
	// at startup. It does not follow later window resizes.
	surfaceWidthFraction  = 0.9
	surfaceHeightFraction = 0.7
)

func RunApp() {
	a := app.NewWithID("io.sketchpad.app")

	themes := theme.NewManager()
	a.Settings().SetTheme(&theme.AppTheme{Manager: themes})

	w := a.NewWindow("SketchPad")
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	board := state.NewBoard()
	sketch := NewBoardWidget(board, themes)
	sketch.SetSurfaceSize(fyne.NewSize(
		windowWidth*surfaceWidthFraction,
		windowHeight*surfaceHeightFraction,
	))

	toolbar := NewToolbar(a, sketch, board, themes)

	content := container.NewBorder(toolbar, nil, nil, nil, container.NewCenter(sketch))
	w.SetContent(content)
	w.ShowAndRun()
}
