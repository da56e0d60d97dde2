package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// AppTheme maps the sketch palette onto the Fyne widget theme so the toolbar
// follows the same light/dark flag as the surface.
type AppTheme struct {
	Manager *Manager
}

var _ fyne.Theme = (*AppTheme)(nil)

func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.Manager.Palette()
	switch name {
	case fynetheme.ColorNameBackground:
		return p.Background
	case fynetheme.ColorNameForeground:
		return p.Text
	case fynetheme.ColorNamePrimary:
		return p.Accent
	case fynetheme.ColorNameSeparator:
		return p.Border
	default:
		return fynetheme.DefaultTheme().Color(name, t.fyneVariant())
	}
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}

func (t *AppTheme) fyneVariant() fyne.ThemeVariant {
	if t.Manager.Variant() == Dark {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}
