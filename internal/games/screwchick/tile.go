package screwchick

// Tile is the content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileScrew1
	TileScrew2
	TileBox1
	TileBox2
)

// IsScrew reports whether the tile is a screw lying on the floor.
func (t Tile) IsScrew() bool {
	return t == TileScrew1 || t == TileScrew2
}

// IsBox reports whether the tile is a delivery box.
func (t Tile) IsBox() bool {
	return t == TileBox1 || t == TileBox2
}

// AcceptedScrew returns the screw kind a box takes.
// Non-box tiles accept nothing and return TileEmpty.
func (t Tile) AcceptedScrew() Tile {
	switch t {
	case TileBox1:
		return TileScrew1
	case TileBox2:
		return TileScrew2
	default:
		return TileEmpty
	}
}

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileScrew1:
		return "screw1"
	case TileScrew2:
		return "screw2"
	case TileBox1:
		return "box1"
	case TileBox2:
		return "box2"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate, not a screen coordinate.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is the chick's facing.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell offset for moving in d.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
