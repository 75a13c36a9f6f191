package screwchick

// Segment is one carried screw trailing the chick.
type Segment struct {
	Item Tile // TileScrew1 or TileScrew2
	Pos  Point
}

// Body is the chain of carried screws. Index 0 is the front, the oldest
// pickup and the first one delivered; the last index is the tail.
type Body struct {
	segs []Segment
}

// Len returns the number of carried screws.
func (b *Body) Len() int {
	return len(b.segs)
}

// At returns segment i.
func (b *Body) At(i int) Segment {
	return b.segs[i]
}

// Segments returns a copy of the chain, front first.
func (b *Body) Segments() []Segment {
	return append([]Segment(nil), b.segs...)
}

// Front returns the segment next to the chick.
func (b *Body) Front() (Segment, bool) {
	if len(b.segs) == 0 {
		return Segment{}, false
	}
	return b.segs[0], true
}

// Tail returns the last segment.
func (b *Body) Tail() (Segment, bool) {
	if len(b.segs) == 0 {
		return Segment{}, false
	}
	return b.segs[len(b.segs)-1], true
}

// Occupies reports whether any segment sits on p.
func (b *Body) Occupies(p Point) bool {
	for _, s := range b.segs {
		if s.Pos == p {
			return true
		}
	}
	return false
}

// Follow moves the chain one link: every segment takes the position of the
// one ahead of it, and the front takes lead, the chick's position before it moves.
func (b *Body) Follow(lead Point) {
	if len(b.segs) == 0 {
		return
	}
	for i := len(b.segs) - 1; i > 0; i-- {
		b.segs[i].Pos = b.segs[i-1].Pos
	}
	b.segs[0].Pos = lead
}

// Append adds a segment at the tail.
func (b *Body) Append(item Tile, pos Point) {
	b.segs = append(b.segs, Segment{Item: item, Pos: pos})
}

// FrontRun returns the length of the run of item at the front of the chain.
func (b *Body) FrontRun(item Tile) int {
	n := 0
	for n < len(b.segs) && b.segs[n].Item == item {
		n++
	}
	return n
}

// RemovePrefix drops the first n segments and pulls the rest forward so the
// chain keeps no gap: the segment that was at n+i takes the old position of i.
// The result is a fresh slice; the old backing array is not shared.
func (b *Body) RemovePrefix(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.segs) {
		b.segs = nil
		return
	}
	rest := make([]Segment, len(b.segs)-n)
	for i := range rest {
		rest[i] = Segment{Item: b.segs[n+i].Item, Pos: b.segs[i].Pos}
	}
	b.segs = rest
}

// Reset empties the chain.
func (b *Body) Reset() {
	b.segs = nil
}
