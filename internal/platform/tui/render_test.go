package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/screwchick/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "AB", core.ColorInk)
	s.DrawText(2, 0, "cd", core.ColorMid)
	s.DrawText(0, 1, "xy", core.ColorAccent)

	for _, name := range []string{"green", "mono"} {
		p, err := PaletteByName(name)
		if err != nil {
			t.Fatalf("PaletteByName(%q): %v", name, err)
		}
		out := RenderScreen(s, p)
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("%s: expected 2 lines, got %d", name, len(lines))
		}
		if lines[0] != "ABcd  " || lines[1] != "xy    " {
			t.Errorf("%s: rendered %q", name, out)
		}
	}
}

func TestPaletteByNameUnknown(t *testing.T) {
	if _, err := PaletteByName("sepia"); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestPalettesCoverEverySlot(t *testing.T) {
	slots := []core.Color{core.ColorDefault, core.ColorLight, core.ColorMid, core.ColorDark, core.ColorInk, core.ColorAccent}
	for name, p := range map[string]Palette{"green": GreenPalette(), "mono": MonoPalette()} {
		for _, c := range slots {
			if _, ok := p[c]; !ok {
				t.Errorf("%s palette missing slot %d", name, c)
			}
		}
	}
}
