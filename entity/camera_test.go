package entity

import (
	"math"
	"testing"

	"github.com/chessdroid108/TagArena/constants"
)

func TestCameraNoPlayersIsNoOp(t *testing.T) {
	c := NewCamera(constants.LevelWidth, constants.LevelHeight)
	before := *c
	c.Update(nil, tickDt)
	if *c != before {
		t.Errorf("Expected no state change without players")
	}
}

func TestCameraZoomBounds(t *testing.T) {
	tests := []struct {
		name     string
		p1x, p2x float64
		expected float64
	}{
		// 400/dist clamped to [0.5, 1.5]
		{"Players on top of each other", 400, 400, constants.CameraMaxZoom},
		{"Players near", 400, 500, constants.CameraMaxZoom},
		{"Players mid-range", 200, 600, 1.0},
		// Distance factor saturates at 700 before the zoom floor can bind
		{"Players far apart", 100, 1500, constants.CameraZoomReach / constants.CameraDistanceMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(constants.LevelWidth, constants.LevelHeight)
			players := []*Player{
				NewPlayer(1, tt.p1x, 300, true),
				NewPlayer(2, tt.p2x, 300, false),
			}
			c.Update(players, tickDt)
			if math.Abs(c.TargetZoom-tt.expected) > 1e-9 {
				t.Errorf("Expected target zoom %v, got %v", tt.expected, c.TargetZoom)
			}
		})
	}
}

func TestCameraConvergesOnTarget(t *testing.T) {
	c := NewCamera(constants.LevelWidth, constants.LevelHeight)
	players := []*Player{
		NewPlayer(1, 700, 500, true),
		NewPlayer(2, 900, 700, false),
	}

	for i := 0; i < 600; i++ {
		c.Update(players, tickDt)
	}

	if math.Abs(c.View.CenterX()-800) > 1.0 {
		t.Errorf("Expected view centered near X 800, got %v", c.View.CenterX())
	}
	if math.Abs(c.View.CenterY()-600) > 1.0 {
		t.Errorf("Expected view centered near Y 600, got %v", c.View.CenterY())
	}
	if math.Abs(c.ZoomLevel-c.TargetZoom) > 0.01 {
		t.Errorf("Expected zoom converged to %v, got %v", c.TargetZoom, c.ZoomLevel)
	}
}

func TestCameraStaysInsideLevel(t *testing.T) {
	c := NewCamera(constants.LevelWidth, constants.LevelHeight)
	// Players jammed into the top-left corner drag the view to the edge
	players := []*Player{
		NewPlayer(1, 30, 30, true),
		NewPlayer(2, 60, 60, false),
	}

	for i := 0; i < 600; i++ {
		c.Update(players, tickDt)

		if c.View.Left < 0 || c.View.Top < 0 {
			t.Fatalf("Expected view inside level, got corner (%v, %v)", c.View.Left, c.View.Top)
		}
		if c.View.Right() > constants.LevelWidth+1e-6 || c.View.Bottom() > constants.LevelHeight+1e-6 {
			t.Fatalf("Expected view inside level, got far corner (%v, %v)", c.View.Right(), c.View.Bottom())
		}
	}
}

func TestCameraApplyRoundTrip(t *testing.T) {
	c := NewCamera(constants.LevelWidth, constants.LevelHeight)
	players := []*Player{
		NewPlayer(1, 300, 300, true),
		NewPlayer(2, 800, 500, false),
	}
	for i := 0; i < 10; i++ {
		c.Update(players, tickDt)
	}

	tests := []struct {
		name string
		x, y float64
	}{
		{"Origin", 0, 0},
		{"Mid level", 800, 600},
		{"Far corner", 1600, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := c.ApplyPos(tt.x, tt.y)
			wx, wy := c.ReverseApply(sx, sy)
			if math.Abs(wx-tt.x) > 1e-9 || math.Abs(wy-tt.y) > 1e-9 {
				t.Errorf("Expected round trip to (%v, %v), got (%v, %v)", tt.x, tt.y, wx, wy)
			}
		})
	}
}
