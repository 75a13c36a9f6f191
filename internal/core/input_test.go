package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionDown)
	f.Set(ActionLeft)

	seq := f.Sequence()
	want := []Action{ActionLeft, ActionDown, ActionLeft}
	if len(seq) != len(want) {
		t.Fatalf("Sequence() len = %d, expected %d", len(seq), len(want))
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("Sequence()[%d] = %v, expected %v", i, seq[i], want[i])
		}
	}
	if !f.Has(ActionDown) || f.Has(ActionUp) {
		t.Error("Has() does not reflect set actions")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionConfirm) || len(f.Sequence()) != 0 {
		t.Error("Clear() should drop all actions")
	}
	if !clone.Has(ActionConfirm) || len(clone.Sequence()) != 1 {
		t.Error("Clone() should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionRestart, ActionPause, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}
