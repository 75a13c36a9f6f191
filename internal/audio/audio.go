// Package audio describes the game's sound cues as short melodies and holds
// the players that need no output device. Package speakerout sounds them.
package audio

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/screwchick/internal/core"
)

// ComboGap separates the repeats of a combo cue.
const ComboGap = 100 * time.Millisecond

// Player plays sound events without blocking the caller.
type Player interface {
	Play(ev core.SoundEvent)
}

// Note is one tone of a cue. A zero Freq is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

var cueNotes = map[core.Cue][]Note{
	core.CueStart: {
		{523.25, 80 * time.Millisecond},
		{659.25, 80 * time.Millisecond},
		{783.99, 120 * time.Millisecond},
	},
	core.CuePickup: {
		{880, 50 * time.Millisecond},
		{1318.51, 60 * time.Millisecond},
	},
	core.CueDelivery: {
		{1046.50, 60 * time.Millisecond},
		{1567.98, 90 * time.Millisecond},
	},
	core.CueDeliveryFail: {
		{196, 120 * time.Millisecond},
		{130.81, 160 * time.Millisecond},
	},
	core.CueGameOver: {
		{392, 150 * time.Millisecond},
		{329.63, 150 * time.Millisecond},
		{261.63, 300 * time.Millisecond},
	},
}

// Plan returns the notes an event sounds, repeats separated by ComboGap.
// It reports false for an unknown cue.
func Plan(ev core.SoundEvent) ([]Note, bool) {
	notes, ok := cueNotes[ev.Cue]
	if !ok {
		return nil, false
	}
	out := make([]Note, 0, ev.Times()*(len(notes)+1))
	for i := 0; i < ev.Times(); i++ {
		if i > 0 {
			out = append(out, Note{Dur: ComboGap})
		}
		out = append(out, notes...)
	}
	return out, true
}

// LogPlayer records cues at debug level instead of sounding them.
type LogPlayer struct {
	Logger *log.Logger
}

// Play logs the event.
func (p *LogPlayer) Play(ev core.SoundEvent) {
	if _, ok := cueNotes[ev.Cue]; !ok {
		p.Logger.Warn("missing cue", "cue", ev.Cue)
		return
	}
	p.Logger.Debug("cue", "cue", ev.Cue, "repeat", ev.Times())
}

// Nop discards every event.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.SoundEvent) {}
