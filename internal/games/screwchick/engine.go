package screwchick

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/screwchick/internal/config"
	"github.com/vovakirdan/screwchick/internal/core"
)

// Params are the engine tunables, resolved from config and the runtime.
type Params struct {
	GridW    int
	GridH    int
	TickRate int // frames per second

	BaseGridSpeed        float64 // grid steps per second at multiplier 1.0
	InitialSpeed         float64
	PickupIncrease       float64
	DeliveryFailIncrease float64
	DeliveryDecay        float64

	QueueDepth int
}

// DefaultParams returns the handheld layout at 60 frames per second.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultScrewChickConfig(), 60)
}

// ParamsFromConfig maps a loaded config onto engine params.
func ParamsFromConfig(cfg config.ScrewChickConfig, tickRate int) Params {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Params{
		GridW:                cfg.Grid.Width,
		GridH:                cfg.Grid.Height,
		TickRate:             tickRate,
		BaseGridSpeed:        cfg.Speed.BaseGridSpeed,
		InitialSpeed:         cfg.Speed.Initial,
		PickupIncrease:       cfg.Speed.PickupIncrease,
		DeliveryFailIncrease: cfg.Speed.DeliveryFailIncrease,
		DeliveryDecay:        cfg.Speed.DeliveryDecay,
		QueueDepth:           cfg.Input.QueueDepth,
	}
}

// Outcome is the single event a grid step resolves to.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePickup
	OutcomeDelivery
	OutcomeDeliveryFail
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePickup:
		return "pickup"
	case OutcomeDelivery:
		return "delivery"
	case OutcomeDeliveryFail:
		return "delivery_fail"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine runs the rules over a State. It owns the rng and the cues produced
// since the last Drain; all game data lives in the State.
type Engine struct {
	params Params
	rng    *rand.Rand
	sounds []core.SoundEvent
}

// NewEngine creates an engine whose spawns are reproducible for a seed.
func NewEngine(params Params, seed int64) *Engine {
	return &Engine{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Params returns the engine tunables.
func (e *Engine) Params() Params {
	return e.params
}

// NewState returns a session sitting on the title screen with a fresh board.
func (e *Engine) NewState() *State {
	st := &State{}
	e.reinit(st)
	st.Scene = SceneTitle
	return st
}

// reinit resets the whole data model except the scene and global clock.
func (e *Engine) reinit(st *State) {
	p := e.params
	st.Map = NewGameMap(p.GridW, p.GridH)
	st.Chick = Chick{Pos: Point{X: p.GridW / 2, Y: p.GridH/2 + 1}, Facing: DirUp}
	st.Body.Reset()
	st.Queue = NewInputQueue(p.QueueDepth)
	st.MoveFrameTimer = 0
	st.SpeedMultiplier = p.InitialSpeed
	st.DeliveryBaseSpeed = p.InitialSpeed
	st.Score = 0
	st.ElapsedTicks = 0
	st.Paused = false
	st.ScrewsPicked = 0
	st.ScrewsDelivered = 0
	st.LastCombo = 0
	st.EndCause = EndNone
	e.populate(st)
}

// Start moves TITLE to PLAYING on a freshly built board and reports whether
// the transition happened.
func (e *Engine) Start(st *State) bool {
	if st.Scene != SceneTitle {
		return false
	}
	e.reinit(st)
	st.Scene = ScenePlaying
	e.emit(core.CueStart, 1)
	return true
}

// Restart moves GAME_OVER back to TITLE, clearing every clock.
func (e *Engine) Restart(st *State) bool {
	if st.Scene != SceneGameOver {
		return false
	}
	e.reinit(st)
	st.Scene = SceneTitle
	st.GlobalTicks = 0
	return true
}

// TogglePause flips the pause flag while playing.
func (e *Engine) TogglePause(st *State) bool {
	if st.Scene != ScenePlaying {
		return false
	}
	st.Paused = !st.Paused
	return true
}

// Enqueue buffers a turn for a later grid step.
func (e *Engine) Enqueue(st *State, d Direction) bool {
	if st.Scene != ScenePlaying || st.Paused {
		return false
	}
	return st.Queue.Push(d, st.Chick.Facing)
}

// StepInterval returns the frames between grid steps at the current speed.
func (e *Engine) StepInterval(st *State) int {
	gps := e.params.BaseGridSpeed * st.SpeedMultiplier
	if gps <= 0 {
		return e.params.TickRate
	}
	return int(math.Floor(float64(e.params.TickRate) / gps))
}

// Frame runs one fixed frame and reports whether a grid step happened.
// At most one grid step runs per frame.
func (e *Engine) Frame(st *State) bool {
	st.GlobalTicks++
	if st.Scene != ScenePlaying || st.Paused {
		return false
	}
	st.ElapsedTicks++
	st.MoveFrameTimer--
	if st.MoveFrameTimer > 0 {
		return false
	}
	e.Advance(st)
	if st.Scene == ScenePlaying {
		st.MoveFrameTimer = e.StepInterval(st)
	}
	return true
}

// Advance performs one grid step: turn, follow, move, resolve.
func (e *Engine) Advance(st *State) Outcome {
	if d, ok := st.Queue.Pop(); ok && d != st.Chick.Facing.Opposite() {
		st.Chick.Facing = d
	}
	st.Body.Follow(st.Chick.Pos)
	st.Chick.Pos = st.Chick.Pos.Add(st.Chick.Facing.Delta())
	return e.resolve(st)
}

// resolve applies the event for the tile the chick just entered.
func (e *Engine) resolve(st *State) Outcome {
	pos := st.Chick.Pos
	if !st.Map.InBounds(pos) {
		return e.gameOver(st, EndOutOfBounds)
	}
	tile := st.Map.At(pos)
	if tile == TileWall {
		return e.gameOver(st, EndWall)
	}
	if st.Body.Occupies(pos) {
		return e.gameOver(st, EndBody)
	}
	switch {
	case tile.IsScrew():
		e.pickup(st, pos, tile)
		return OutcomePickup
	case tile.IsBox():
		return e.deliver(st, pos, tile)
	default:
		return OutcomeNone
	}
}

func (e *Engine) pickup(st *State, pos Point, screw Tile) {
	e.emit(core.CuePickup, 1)
	anchor := pos
	if tail, ok := st.Body.Tail(); ok {
		anchor = tail.Pos
	}
	st.Body.Append(screw, anchor)
	st.Map.Set(pos, TileEmpty)
	st.SpeedMultiplier += e.params.PickupIncrease
	st.ScrewsPicked++
	e.SpawnNewScrew(st)
}

func (e *Engine) deliver(st *State, pos Point, box Tile) Outcome {
	front, ok := st.Body.Front()
	if !ok {
		e.emit(core.CueDeliveryFail, 1)
		st.SpeedMultiplier += e.params.DeliveryFailIncrease
		return OutcomeDeliveryFail
	}
	want := box.AcceptedScrew()
	if front.Item != want {
		return e.gameOver(st, EndWrongItem)
	}
	n := st.Body.FrontRun(want)
	e.emit(core.CueDelivery, n)
	st.Body.RemovePrefix(n)
	st.Score += n * (n + 1) / 2
	st.SpeedMultiplier = st.DeliveryBaseSpeed + (st.SpeedMultiplier-st.DeliveryBaseSpeed)*e.params.DeliveryDecay
	st.DeliveryBaseSpeed = st.SpeedMultiplier
	st.ScrewsDelivered += n
	st.LastCombo = n
	st.Map.Set(pos, TileEmpty)
	e.SpawnObject(st, box)
	return OutcomeDelivery
}

func (e *Engine) gameOver(st *State, cause EndCause) Outcome {
	st.Scene = SceneGameOver
	st.EndCause = cause
	st.Queue.Clear()
	e.emit(core.CueGameOver, 1)
	return OutcomeGameOver
}

func (e *Engine) emit(cue core.Cue, repeat int) {
	e.sounds = append(e.sounds, core.SoundEvent{Cue: cue, Repeat: repeat})
}

// Drain returns and forgets the cues produced since the previous call.
func (e *Engine) Drain() []core.SoundEvent {
	out := e.sounds
	e.sounds = nil
	return out
}
