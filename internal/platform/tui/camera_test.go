package tui

import (
	"testing"

	"github.com/vovakirdan/tidepool/internal/core"
)

func TestCameraWorldToScreen(t *testing.T) {
	cam := NewCamera(80, 21)
	cam.Focus = core.V3(10, 0, -5)

	tests := []struct {
		name  string
		world core.Vec3
		x, y  int
	}{
		{"focus at centre", core.V3(10, 0, -5), 40, 10},
		{"+X is right, two columns per unit", core.V3(13, 0, -5), 46, 10},
		{"+Z is up, one row per unit", core.V3(10, 0, -2), 40, 7},
		{"height is ignored", core.V3(10, 4, -5), 40, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cam.WorldToScreen(tt.world)
			if x != tt.x || y != tt.y {
				t.Errorf("WorldToScreen(%v) = (%d, %d), expected (%d, %d)", tt.world, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(60, 20)
	cam.Focus = core.V3(-3, 0, 7)

	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			gx, gy := cam.WorldToScreen(cam.ScreenToWorld(x, y))
			if gx != x || gy != y {
				t.Fatalf("cell (%d, %d) round-trips to (%d, %d)", x, y, gx, gy)
			}
		}
	}
}

func TestCameraVisible(t *testing.T) {
	cam := NewCamera(10, 5)
	if !cam.Visible(0, 0) || !cam.Visible(9, 4) {
		t.Error("corners should be visible")
	}
	if cam.Visible(10, 0) || cam.Visible(0, 5) || cam.Visible(-1, 2) {
		t.Error("cells outside the viewport reported visible")
	}

	cam.Resize(20, 5)
	if !cam.Visible(15, 2) {
		t.Error("Resize() did not grow the viewport")
	}
}
