package core

import "testing"

func TestInputFrameMovement(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Vec3
	}{
		{"idle", nil, Vec3{}},
		{"forward", []Action{ActionForward}, V3(0, 0, 1)},
		{"back left", []Action{ActionBack, ActionLeft}, V3(-1, 0, -1)},
		{"opposing cancel", []Action{ActionLeft, ActionRight}, Vec3{}},
		{"confirm ignored", []Action{ActionConfirm}, Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Movement(); got != tc.expected {
				t.Errorf("Movement() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestZeroInputFrameHas(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero InputFrame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero InputFrame should allocate")
	}
}
