// Package speakerout sounds cues on the default output device through beep.
// It links the platform audio backend, so only the local play command
// imports it.
package speakerout

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/screwchick/internal/audio"
	"github.com/vovakirdan/screwchick/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Options configure New.
type Options struct {
	Mute   bool
	Volume float64 // linear gain, 1 is full scale, 0 is silent
	Logger *log.Logger
}

// New opens the default output device. When the device cannot be opened,
// or when muted, it returns a player that only logs.
func New(opts Options) audio.Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Mute {
		return &audio.LogPlayer{Logger: logger}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio disabled", "error", err)
		return &audio.LogPlayer{Logger: logger}
	}
	return &BeepPlayer{rate: sampleRate, volume: opts.Volume, logger: logger}
}

// Close releases the output device if New opened it.
func Close(p audio.Player) {
	if _, ok := p.(*BeepPlayer); ok {
		speaker.Close()
	}
}

// BeepPlayer mixes cues on the speaker goroutine.
type BeepPlayer struct {
	rate   beep.SampleRate
	volume float64
	logger *log.Logger
}

// Play queues the event's melody on the speaker and returns at once.
func (p *BeepPlayer) Play(ev core.SoundEvent) {
	s, err := p.streamer(ev)
	if err != nil {
		p.logger.Warn("cue skipped", "cue", ev.Cue, "error", err)
		return
	}
	if s == nil {
		p.logger.Warn("missing cue", "cue", ev.Cue)
		return
	}
	speaker.Play(s)
}

// streamer renders a cue to a finite stream; nil for an unknown cue.
func (p *BeepPlayer) streamer(ev core.SoundEvent) (beep.Streamer, error) {
	notes, ok := audio.Plan(ev)
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := p.rate.N(n.Dur)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(p.rate, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return withVolume(beep.Seq(parts...), p.volume), nil
}

// withVolume scales a stream by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
