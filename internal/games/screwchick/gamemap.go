package screwchick

import "strings"

// GameMap is a fixed-size tile grid whose border is always wall.
type GameMap struct {
	width  int
	height int
	tiles  []Tile // row-major
}

// NewGameMap creates a width x height map with walls on the border and
// empty tiles inside.
func NewGameMap(width, height int) *GameMap {
	m := &GameMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if m.IsBorder(Point{X: x, Y: y}) {
				m.tiles[y*width+x] = TileWall
			}
		}
	}
	return m
}

// Width returns the number of columns.
func (m *GameMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *GameMap) Height() int { return m.height }

// InBounds reports whether p lies on the grid.
func (m *GameMap) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsBorder reports whether p is on the outermost ring.
func (m *GameMap) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == m.width-1 || p.Y == m.height-1
}

// At returns the tile at p. Out-of-bounds points read as wall.
func (m *GameMap) At(p Point) Tile {
	if !m.InBounds(p) {
		return TileWall
	}
	return m.tiles[p.Y*m.width+p.X]
}

// Set places t at p and reports whether the map changed.
// Walls are permanent: a wall cell never takes another tile.
func (m *GameMap) Set(p Point, t Tile) bool {
	if !m.InBounds(p) {
		return false
	}
	i := p.Y*m.width + p.X
	if m.tiles[i] == TileWall {
		return false
	}
	m.tiles[i] = t
	return true
}

// Count returns how many cells hold t.
func (m *GameMap) Count(t Tile) int {
	n := 0
	for _, tile := range m.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Has reports whether any cell holds t.
func (m *GameMap) Has(t Tile) bool {
	for _, tile := range m.tiles {
		if tile == t {
			return true
		}
	}
	return false
}

// String renders the map one character per tile, used by snapshots and tests.
func (m *GameMap) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			b.WriteByte(tileCode[m.tiles[y*m.width+x]])
		}
	}
	return b.String()
}

var tileCode = map[Tile]byte{
	TileEmpty:  '.',
	TileWall:   'W',
	TileScrew1: 'n',
	TileScrew2: 'N',
	TileBox1:   'b',
	TileBox2:   'B',
}
