// SketchPad — a small interactive drawing surface.
//
// Freehand pen, rectangle/circle/triangle tools, eraser, color palette,
// clear, and a light/dark theme toggle. Everything is in-memory and lost on
// exit; there is no persistence, networking or export.
//
// Build:
//   go build -o sketchpad .
package main

import "SketchPad/internal/ui"

func main() {
	ui.RunApp()
}
