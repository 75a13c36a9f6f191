package screwchick

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Scene             Scene
	GlobalTicks       uint64
	ElapsedTicks      uint64
	Score             int
	ChickX            int
	ChickY            int
	Facing            Direction
	Body              []Segment
	Queue             []Direction
	SpeedMultiplier   float64
	DeliveryBaseSpeed float64
	MoveFrameTimer    int
	Paused            bool
	EndCause          EndCause
	Map               string
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	return Snapshot{
		Scene:             st.Scene,
		GlobalTicks:       st.GlobalTicks,
		ElapsedTicks:      st.ElapsedTicks,
		Score:             st.Score,
		ChickX:            st.Chick.Pos.X,
		ChickY:            st.Chick.Pos.Y,
		Facing:            st.Chick.Facing,
		Body:              st.Body.Segments(),
		Queue:             st.Queue.Pending(),
		SpeedMultiplier:   st.SpeedMultiplier,
		DeliveryBaseSpeed: st.DeliveryBaseSpeed,
		MoveFrameTimer:    st.MoveFrameTimer,
		Paused:            st.Paused,
		EndCause:          st.EndCause,
		Map:               st.Map.String(),
	}
}
