package screwchick

import (
	"fmt"

	"github.com/vovakirdan/screwchick/internal/core"
)

const (
	tileCols = 2 // terminal columns per grid tile
	hudRows  = 1
)

// Copyright is the title-screen credit line.
const Copyright = "(C) 2025 5z6p.com"

type glyph struct {
	text  string
	color core.Color
}

var tileGlyphs = map[Tile]glyph{
	TileWall:   {"██", core.ColorDark},
	TileScrew1: {"*1", core.ColorDark},
	TileScrew2: {"*2", core.ColorDark},
	TileBox1:   {"[1", core.ColorMid},
	TileBox2:   {"[2", core.ColorMid},
}

var carriedGlyphs = map[Tile]glyph{
	TileScrew1: {"o1", core.ColorMid},
	TileScrew2: {"o2", core.ColorMid},
}

var chickGlyphs = map[Direction]string{
	DirUp:    "@^",
	DirDown:  "@v",
	DirLeft:  "<@",
	DirRight: "@>",
}

// ViewSize returns the terminal cells the playfield needs, HUD included.
func (g *Game) ViewSize() (w, h int) {
	p := g.engine.Params()
	return p.GridW * tileCols, p.GridH + hudRows
}

// Render draws the current scene. It only reads state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	vw, vh := g.ViewSize()
	if dst.Width() < vw || dst.Height() < vh {
		drawOverlay(dst, dst.Bounds(), "WINDOW TOO SMALL", fmt.Sprintf("NEED %dx%d", vw, vh))
		return
	}
	view := dst.Bounds().CenterRect(vw, vh)

	if g.state.Scene == SceneTitle {
		g.renderTitle(dst, view)
		return
	}

	g.renderHUD(dst, view)
	g.renderBoard(dst, view)

	switch {
	case g.state.Scene == SceneGameOver:
		drawOverlay(dst, view, "GAME OVER", fmt.Sprintf("SCORE %d", g.state.Score), "RETURN TO TITLE")
	case g.state.Paused:
		drawOverlay(dst, view, "PAUSED", "P TO RESUME")
	}
}

func (g *Game) renderHUD(dst *core.Screen, view core.Rect) {
	st := g.state
	secs := st.ElapsedSeconds(g.engine.Params().TickRate)
	dst.DrawText(view.X, view.Y, fmt.Sprintf("SCORE:%d", st.Score), core.ColorInk)
	dst.DrawTextRight(view.Right()-1, view.Y, fmt.Sprintf("TIME:%02d:%02d", secs/60, secs%60), core.ColorInk)
}

// cellOrigin returns the screen column and row of a grid tile.
func cellOrigin(view core.Rect, p Point) (int, int) {
	return view.X + p.X*tileCols, view.Y + hudRows + p.Y
}

func drawGlyph(dst *core.Screen, view core.Rect, p Point, gl glyph) {
	x, y := cellOrigin(view, p)
	dst.DrawText(x, y, gl.text, gl.color)
}

func (g *Game) renderBoard(dst *core.Screen, view core.Rect) {
	st := g.state
	m := st.Map
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := Point{X: x, Y: y}
			gl, ok := tileGlyphs[m.At(p)]
			if !ok {
				gl = glyph{"  ", core.ColorLight}
			}
			drawGlyph(dst, view, p, gl)
		}
	}
	for _, seg := range st.Body.Segments() {
		drawGlyph(dst, view, seg.Pos, carriedGlyphs[seg.Item])
	}
	drawGlyph(dst, view, st.Chick.Pos, glyph{chickGlyphs[st.Chick.Facing], core.ColorInk})
}

// titleBlinkOn reports whether the start prompt is visible: two toggles per
// second off the global clock.
func titleBlinkOn(globalTicks uint64, tickRate int) bool {
	if tickRate <= 0 {
		return true
	}
	return (globalTicks*2/uint64(tickRate))%2 == 0
}

func (g *Game) renderTitle(dst *core.Screen, view core.Rect) {
	dst.DrawBox(view, core.ColorDark)
	mid := view.Y + view.H/2
	drawCentered(dst, view, mid-4, "SCREW CHICK", core.ColorInk)
	drawCentered(dst, view, mid-2, "CARRY SCREWS TO THEIR BOX", core.ColorMid)
	if g.highScore > 0 {
		drawCentered(dst, view, mid, fmt.Sprintf("BEST %d", g.highScore), core.ColorInk)
	}
	if titleBlinkOn(g.state.GlobalTicks, g.engine.Params().TickRate) {
		drawCentered(dst, view, mid+3, "PRESS START", core.ColorAccent)
	}
	drawCentered(dst, view, mid+5, "ARROWS/WASD MOVE  SPACE START", core.ColorMid)
	drawCentered(dst, view, view.Bottom()-2, Copyright, core.ColorMid)
}

func drawCentered(dst *core.Screen, area core.Rect, y int, text string, c core.Color) {
	x := area.X + (area.W-len([]rune(text)))/2
	dst.DrawText(x, y, text, c)
}

// drawOverlay draws a boxed message centred in area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	box := area.CenterRect(width+4, len(lines)*2+1)
	dst.DrawRect(box, ' ', core.ColorMid)
	dst.DrawBox(box, core.ColorInk)
	for i, l := range lines {
		drawCentered(dst, box, box.Y+1+i*2, l, core.ColorInk)
	}
}
