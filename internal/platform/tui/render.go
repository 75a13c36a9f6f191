package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/screwchick/internal/core"
)

// Palette maps core.Color slots to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// Handheld four-shade greens, lightest first.
const (
	shadeLight = lipgloss.Color("#9bbc0f")
	shadeMid   = lipgloss.Color("#8bac0f")
	shadeDark  = lipgloss.Color("#306230")
	shadeInk   = lipgloss.Color("#0f380f")
)

// GreenPalette draws on a light green background like the original handheld.
func GreenPalette() Palette {
	bg := lipgloss.NewStyle().Background(shadeLight)
	return Palette{
		core.ColorDefault: bg.Foreground(shadeInk),
		core.ColorLight:   bg.Foreground(shadeLight),
		core.ColorMid:     bg.Foreground(shadeDark),
		core.ColorDark:    bg.Foreground(shadeDark),
		core.ColorInk:     bg.Foreground(shadeInk).Bold(true),
		core.ColorAccent:  lipgloss.NewStyle().Background(shadeInk).Foreground(shadeMid).Bold(true),
	}
}

// MonoPalette keeps the terminal's own colours and only varies weight.
func MonoPalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		core.ColorDefault: plain,
		core.ColorLight:   plain,
		core.ColorMid:     plain.Faint(true),
		core.ColorDark:    plain,
		core.ColorInk:     plain.Bold(true),
		core.ColorAccent:  plain.Reverse(true),
	}
}

// PaletteByName resolves a --palette flag value.
func PaletteByName(name string) (Palette, error) {
	switch name {
	case "", "green":
		return GreenPalette(), nil
	case "mono":
		return MonoPalette(), nil
	default:
		return nil, fmt.Errorf("tui: unknown palette %q (want green or mono)", name)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one style run.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
