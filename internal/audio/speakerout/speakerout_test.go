package speakerout

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/screwchick/internal/audio"
	"github.com/vovakirdan/screwchick/internal/core"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	got, peak := 0, 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		got += n
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < -1 || v > 1 {
				t.Fatalf("sample %f out of range", v)
			}
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		if !ok {
			return got, peak
		}
	}
}

func TestStreamerLength(t *testing.T) {
	p := &BeepPlayer{rate: sampleRate, volume: 0.5, logger: log.Default()}
	ev := core.SoundEvent{Cue: core.CueDelivery, Repeat: 2}

	s, err := p.streamer(ev)
	if err != nil || s == nil {
		t.Fatalf("streamer: %v, %v", s, err)
	}

	notes, _ := audio.Plan(ev)
	want := 0
	for _, n := range notes {
		want += sampleRate.N(n.Dur)
	}

	got, peak := drain(t, s)
	if got != want {
		t.Errorf("streamed %d samples, expected %d (%v)", got, want, time.Duration(got)*time.Second/time.Duration(sampleRate))
	}
	if peak == 0 {
		t.Error("half volume should not be silent")
	}
}

func TestStreamerZeroVolumeIsSilent(t *testing.T) {
	p := &BeepPlayer{rate: sampleRate, volume: 0, logger: log.Default()}
	s, err := p.streamer(core.SoundEvent{Cue: core.CuePickup})
	if err != nil || s == nil {
		t.Fatalf("streamer: %v, %v", s, err)
	}
	if got, peak := drain(t, s); got == 0 || peak != 0 {
		t.Errorf("volume 0 streamed %d samples with peak %f, expected silence", got, peak)
	}
}

func TestStreamerUnknownCue(t *testing.T) {
	p := &BeepPlayer{rate: sampleRate, volume: 1, logger: log.Default()}
	s, err := p.streamer(core.SoundEvent{Cue: "nope"})
	if s != nil || err != nil {
		t.Errorf("expected nil stream and no error, got %v, %v", s, err)
	}
}

func TestMutedNewLogsOnly(t *testing.T) {
	p := New(Options{Mute: true, Logger: log.New(&bytes.Buffer{})})
	if _, ok := p.(*audio.LogPlayer); !ok {
		t.Errorf("muted player = %T, expected *audio.LogPlayer", p)
	}
	Close(p)
}
