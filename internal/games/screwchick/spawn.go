package screwchick

// freeCells lists interior empty cells not covered by the chick or the body,
// in row-major order so a seeded rng picks reproducibly.
func freeCells(st *State) []Point {
	m := st.Map
	var cells []Point
	for y := 1; y < m.Height()-1; y++ {
		for x := 1; x < m.Width()-1; x++ {
			p := Point{X: x, Y: y}
			if m.At(p) == TileEmpty && !st.Occupied(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// SpawnObject places kind on a uniformly chosen free cell. It reports false
// and leaves the map untouched when no free cell exists.
func (e *Engine) SpawnObject(st *State, kind Tile) (Point, bool) {
	cells := freeCells(st)
	if len(cells) == 0 {
		return Point{}, false
	}
	p := cells[e.rng.Intn(len(cells))]
	st.Map.Set(p, kind)
	return p, true
}

// SpawnNewScrew keeps both screw kinds on the floor: a missing kind is
// spawned first, otherwise the kind is chosen at random.
func (e *Engine) SpawnNewScrew(st *State) (Point, bool) {
	return e.SpawnObject(st, e.nextScrewKind(st.Map))
}

func (e *Engine) nextScrewKind(m *GameMap) Tile {
	has1, has2 := m.Has(TileScrew1), m.Has(TileScrew2)
	switch {
	case has1 && has2:
		return e.randomScrew()
	case !has1:
		return TileScrew1
	default:
		return TileScrew2
	}
}

func (e *Engine) randomScrew() Tile {
	if e.rng.Intn(2) == 0 {
		return TileScrew1
	}
	return TileScrew2
}

// populate lays out a fresh board: one of each screw and box, then one more
// screw of a random kind.
func (e *Engine) populate(st *State) {
	for _, kind := range []Tile{TileScrew1, TileScrew2, TileBox1, TileBox2} {
		e.SpawnObject(st, kind)
	}
	e.SpawnObject(st, e.randomScrew())
}
