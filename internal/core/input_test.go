package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionTap)
	if !f.Has(ActionTap) {
		t.Error("Has(ActionTap) should be true after Set")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(ActionQuit) should be false")
	}

	f.Set(ActionNone)
	if len(f.Actions) != 1 {
		t.Errorf("ActionNone should not be recorded, got %d actions", len(f.Actions))
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionTap) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionDebug)
	if !f.Has(ActionDebug) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionTap)
	f.Set(ActionQuit)

	f.Clear()

	if f.Has(ActionTap) || f.Has(ActionQuit) || len(f.Actions) != 0 {
		t.Error("Clear should remove every action")
	}

	// A cleared frame is reused for the next tick.
	f.Set(ActionDebug)
	if !f.Has(ActionDebug) {
		t.Error("Set after Clear should record the action")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionTap:   "Tap",
		ActionQuit:  "Quit",
		ActionDebug: "Debug",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
