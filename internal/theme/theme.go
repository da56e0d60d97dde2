// Package theme holds the two fixed color palettes and the light/dark flag
// shared by the drawing surface and the toolbar.
package theme

import "image/color"

// Variant selects one of the two fixed palettes.
type Variant int

const (
	Light Variant = iota
	Dark
)

func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// Palette is the set of named colors consumed by rendering and styling code.
type Palette struct {
	Background color.NRGBA // window background behind the surface
	Surface    color.NRGBA // drawing surface fill, also the eraser color
	Text       color.NRGBA
	Border     color.NRGBA
	Accent     color.NRGBA
	ToolActive color.NRGBA // highlight for the selected tool button
}

// LightPalette returns the fixed light palette. This is the start state.
func LightPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0xF5, G: 0xF6, B: 0xF8, A: 0xFF},
		Surface:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Text:       color.NRGBA{R: 0x1A, G: 0x1C, B: 0x1E, A: 0xFF},
		Border:     color.NRGBA{R: 0xE0, G: 0xE4, B: 0xE8, A: 0xFF},
		Accent:     color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF},
		ToolActive: color.NRGBA{R: 0xC5, G: 0xCA, B: 0xE9, A: 0xFF},
	}
}

// DarkPalette returns the fixed dark palette.
func DarkPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0x1A, G: 0x1C, B: 0x1E, A: 0xFF},
		Surface:    color.NRGBA{R: 0x2A, G: 0x2D, B: 0x30, A: 0xFF},
		Text:       color.NRGBA{R: 0xEC, G: 0xEC, B: 0xEC, A: 0xFF},
		Border:     color.NRGBA{R: 0x3A, G: 0x3E, B: 0x42, A: 0xFF},
		Accent:     color.NRGBA{R: 0x7A, G: 0x8A, B: 0xFF, A: 0xFF},
		ToolActive: color.NRGBA{R: 0x3F, G: 0x47, B: 0x6E, A: 0xFF},
	}
}

// Manager owns the light/dark flag for one widget instance. It is created
// once, mutated only by Toggle, and read by every consumer.
type Manager struct {
	variant Variant

	// OnChange is invoked after every toggle.
	OnChange func()
}

// NewManager starts at the light variant.
func NewManager() *Manager {
	return &Manager{variant: Light}
}

func (m *Manager) Variant() Variant {
	return m.variant
}

// Palette returns the palette for the current variant.
func (m *Manager) Palette() Palette {
	if m.variant == Dark {
		return DarkPalette()
	}
	return LightPalette()
}

// Toggle flips between light and dark.
func (m *Manager) Toggle() {
	if m.variant == Light {
		m.variant = Dark
	} else {
		m.variant = Light
	}
	if m.OnChange != nil {
		m.OnChange()
	}
}
