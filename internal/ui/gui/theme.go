//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"aqualand/internal/scene"
)

// aquaTheme is the default theme pinned to its light variant with the scene
// background behind everything.
type aquaTheme struct {
	base fyne.Theme
}

func newAquaTheme() fyne.Theme {
	return &aquaTheme{base: theme.DefaultTheme()}
}

func (t *aquaTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return scene.BackgroundColor.NRGBA()
	}
	return t.base.Color(name, theme.VariantLight)
}

func (t *aquaTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *aquaTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *aquaTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
