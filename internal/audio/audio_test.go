package audio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/screwchick/internal/core"
)

func TestEveryCueHasNotes(t *testing.T) {
	for _, cue := range []core.Cue{core.CueStart, core.CuePickup, core.CueDelivery, core.CueDeliveryFail, core.CueGameOver} {
		notes, ok := Plan(core.SoundEvent{Cue: cue})
		if !ok || len(notes) == 0 {
			t.Errorf("cue %q has no melody", cue)
		}
	}
}

func TestPlanCombo(t *testing.T) {
	single, _ := Plan(core.SoundEvent{Cue: core.CueDelivery})
	combo, ok := Plan(core.SoundEvent{Cue: core.CueDelivery, Repeat: 3})
	if !ok {
		t.Fatal("delivery cue missing")
	}
	if want := 3*len(single) + 2; len(combo) != want {
		t.Fatalf("combo has %d notes, expected %d", len(combo), want)
	}

	rests := 0
	for _, n := range combo {
		if n.Freq == 0 {
			rests++
			if n.Dur != ComboGap {
				t.Errorf("rest of %v, expected %v", n.Dur, ComboGap)
			}
		}
	}
	if rests != 2 {
		t.Errorf("expected 2 gaps, got %d", rests)
	}
}

func TestPlanUnknownCue(t *testing.T) {
	if _, ok := Plan(core.SoundEvent{Cue: "nope"}); ok {
		t.Error("unknown cue should not plan")
	}
}

func TestLogPlayer(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	p := &LogPlayer{Logger: logger}

	p.Play(core.SoundEvent{Cue: core.CuePickup})
	p.Play(core.SoundEvent{Cue: "nope"})

	out := buf.String()
	if !strings.Contains(out, "pickup") {
		t.Errorf("pickup not logged: %q", out)
	}
	if !strings.Contains(out, "missing cue") {
		t.Errorf("missing cue not warned: %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	var p Player = Nop{}
	p.Play(core.SoundEvent{Cue: core.CueStart})
}
