package core

// Cue names a sound the simulation asks the platform to play.
type Cue string

const (
	CueStart        Cue = "start"
	CuePickup       Cue = "pickup"
	CueDelivery     Cue = "delivery"
	CueDeliveryFail Cue = "deliveryFail"
	CueGameOver     Cue = "gameOver"
)

// String returns the cue name.
func (c Cue) String() string {
	return string(c)
}

// SoundEvent is one request to play a cue.
// Repeat is how many times the cue sounds back to back (a delivery combo
// sounds once per delivered screw); values below 1 mean once.
type SoundEvent struct {
	Cue    Cue
	Repeat int
}

// Times returns the effective repeat count.
func (e SoundEvent) Times() int {
	if e.Repeat < 1 {
		return 1
	}
	return e.Repeat
}
