package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"aqualand/internal/visual"
)

var (
	PanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	EventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

	ButtonBaseStyle = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
)

func toColorful(c visual.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend composites fg over an opaque bg using fg's alpha and returns the
// result as #rrggbb. Terminals have no alpha channel.
func Blend(fg visual.Color, bg visual.Color) string {
	alpha := float64(fg.A) / 255
	return toColorful(bg).BlendRgb(toColorful(fg), alpha).Clamped().Hex()
}

// Hex composites c over the scene background.
func Hex(c visual.Color) string {
	return Blend(c, visual.RayWhite)
}

func Foreground(c visual.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c)))
}

func TitleStyle(c visual.Color) lipgloss.Style {
	return Foreground(c).Bold(true)
}

// ButtonStyle renders a button in its fill and ink colors. A hovered button
// gets a white border and a focused one a border in its ink color; hover
// wins.
func ButtonStyle(fill visual.Color, ink visual.Color, hovered bool, focused bool) lipgloss.Style {
	border := fill
	if focused {
		border = ink
	}
	if hovered {
		border = visual.White
	}
	return ButtonBaseStyle.
		Background(lipgloss.Color(Hex(fill))).
		Foreground(lipgloss.Color(Hex(ink))).
		BorderForeground(lipgloss.Color(Hex(border))).
		Bold(focused)
}
