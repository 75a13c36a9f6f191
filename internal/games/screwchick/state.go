package screwchick

// Scene is the top-level mode of a session.
type Scene int

const (
	SceneTitle Scene = iota
	ScenePlaying
	SceneGameOver
)

func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case ScenePlaying:
		return "playing"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndCause records which terminal event ended a session.
type EndCause int

const (
	EndNone EndCause = iota
	EndOutOfBounds
	EndWall
	EndBody
	EndWrongItem
)

func (c EndCause) String() string {
	switch c {
	case EndNone:
		return "none"
	case EndOutOfBounds:
		return "out_of_bounds"
	case EndWall:
		return "wall"
	case EndBody:
		return "body"
	case EndWrongItem:
		return "wrong_item"
	default:
		return "unknown"
	}
}

// Chick is the player-controlled head.
type Chick struct {
	Pos    Point
	Facing Direction
}

// State is the whole simulation. The engine mutates it in place once per
// frame; renderers only read it.
type State struct {
	Scene Scene
	Map   *GameMap
	Chick Chick
	Body  Body
	Queue InputQueue

	MoveFrameTimer    int
	SpeedMultiplier   float64
	DeliveryBaseSpeed float64
	Score             int

	ElapsedTicks uint64 // PLAYING and unpaused only
	GlobalTicks  uint64 // every frame
	Paused       bool

	ScrewsPicked    int
	ScrewsDelivered int
	LastCombo       int
	EndCause        EndCause
}

// Occupied reports whether the chick or a body segment covers p.
func (s *State) Occupied(p Point) bool {
	return s.Chick.Pos == p || s.Body.Occupies(p)
}

// ElapsedSeconds returns the displayed play time in whole seconds.
func (s *State) ElapsedSeconds(tickRate int) uint64 {
	if tickRate <= 0 {
		return 0
	}
	return s.ElapsedTicks / uint64(tickRate)
}
