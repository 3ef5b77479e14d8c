package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 0.01
}

func TestNewFitsViewRadius(t *testing.T) {
	cam := New(1280, 720, 350, 1500)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	// The shorter screen side spans the view diameter.
	if want := float32(720) / 700; !near(cam.Scale(), want) {
		t.Errorf("scale = %f, want %f", cam.Scale(), want)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 350, 1500)
	cam.X, cam.Y = 200, -100

	sx, sy := cam.WorldToScreen(200, -100)
	if !near(sx, 640) || !near(sy, 360) {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 350, 1500)
	cam.X, cam.Y = 50, 75
	cam.SetZoom(1.7)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}
	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name      string
		smoothing float32
		tx, ty    float32
		dt        float32
		wantX     float32
		wantY     float32
	}{
		{"snap", 0, 300, 400, 0.016, 300, 400},
		{"clamped to rim", 0, 3000, 0, 0.016, 1500, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := New(1280, 720, 350, 1500)
			cam.Smoothing = tc.smoothing
			cam.Follow(tc.tx, tc.ty, tc.dt)
			if !near(cam.X, tc.wantX) || !near(cam.Y, tc.wantY) {
				t.Errorf("camera at (%f, %f), want (%f, %f)", cam.X, cam.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestFollowSmoothingApproaches(t *testing.T) {
	cam := New(1280, 720, 350, 1500)
	cam.Follow(100, 0, 0.1)

	if cam.X <= 0 || cam.X >= 100 {
		t.Fatalf("smoothed x = %f, want strictly between 0 and 100", cam.X)
	}
	for range 100 {
		cam.Follow(100, 0, 0.1)
	}
	if !near(cam.X, 100) {
		t.Errorf("x = %f after settling, want 100", cam.X)
	}
}

func TestZoomClamping(t *testing.T) {
	cam := New(1280, 720, 350, 1500)

	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom = %f, want max %f", cam.Zoom, cam.MaxZoom)
	}
	cam.SetZoom(0.01)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom = %f, want min %f", cam.Zoom, cam.MinZoom)
	}
	cam.Reset()
	if cam.Zoom != 1 || cam.X != 0 || cam.Y != 0 {
		t.Error("reset did not restore defaults")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 350, 1500)

	if !cam.IsVisible(0, 0, 10) {
		t.Error("center should be visible")
	}
	if !cam.IsVisible(0, 340, 10) {
		t.Error("point inside the view radius should be visible")
	}
	if cam.IsVisible(1400, 0, 10) {
		t.Error("distant point should be culled")
	}
}
