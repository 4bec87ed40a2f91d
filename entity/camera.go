package entity

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/vmath"
)

// Camera tracks a smoothed view rectangle over the level. Everything here
// is derived state, recomputed each tick from player positions.
type Camera struct {
	// Level extent the view is clamped inside
	LevelWidth, LevelHeight float64

	// View is the world rectangle currently on screen
	View vmath.Rect

	TargetX, TargetY float64
	ZoomLevel        float64
	TargetZoom       float64

	MinZoom, MaxZoom float64
	PositionSmooth   float64
	ZoomSmooth       float64
}

// NewCamera starts with the whole level in frame at default zoom
func NewCamera(levelWidth, levelHeight float64) *Camera {
	return &Camera{
		LevelWidth:     levelWidth,
		LevelHeight:    levelHeight,
		View:           vmath.Rect{Width: levelWidth, Height: levelHeight},
		ZoomLevel:      1.0,
		TargetZoom:     1.0,
		MinZoom:        constants.CameraMinZoom,
		MaxZoom:        constants.CameraMaxZoom,
		PositionSmooth: constants.CameraPositionSmooth,
		ZoomSmooth:     constants.CameraZoomSmooth,
	}
}

// Update retargets the focal point to the mean player position and the
// zoom to the maximum pairwise distance, then smooths both.
//
// The `v += (target-v)*factor*(60*dt)` form is frame-rate independent only
// at 60 fps; the effective constant scales with dt elsewhere. The smoothing
// constants were tuned against this form, so it stays as is rather than
// becoming a true exponential decay.
func (c *Camera) Update(players []*Player, dt float64) {
	if len(players) == 0 {
		return
	}

	var sumX, sumY float64
	for _, p := range players {
		sumX += p.X
		sumY += p.Y
	}
	c.TargetX = sumX / float64(len(players))
	c.TargetY = sumY / float64(len(players))

	if len(players) >= 2 {
		var maxDist float64
		for i := 0; i < len(players); i++ {
			for j := i + 1; j < len(players); j++ {
				d := vmath.V2Dist(
					vmath.Vec2{X: players[i].X, Y: players[i].Y},
					vmath.Vec2{X: players[j].X, Y: players[j].Y},
				)
				if d > maxDist {
					maxDist = d
				}
			}
		}
		// Further apart = zoom out
		distanceFactor := vmath.Clamp(maxDist, constants.CameraDistanceMin, constants.CameraDistanceMax)
		c.TargetZoom = vmath.Clamp(constants.CameraZoomReach/distanceFactor, c.MinZoom, c.MaxZoom)
	}

	cx := c.View.CenterX()
	cy := c.View.CenterY()
	cx += (c.TargetX - cx) * c.PositionSmooth * (60 * dt)
	cy += (c.TargetY - cy) * c.PositionSmooth * (60 * dt)
	c.View.Left = cx - c.View.Width/2
	c.View.Top = cy - c.View.Height/2
	c.ZoomLevel += (c.TargetZoom - c.ZoomLevel) * c.ZoomSmooth * (60 * dt)

	// Resize the view for the new zoom, then keep it inside the level
	c.View.Width = constants.ScreenWidth / c.ZoomLevel
	c.View.Height = constants.ScreenHeight / c.ZoomLevel
	c.View.Left = vmath.Clamp(c.View.Left, 0, c.LevelWidth-c.View.Width)
	c.View.Top = vmath.Clamp(c.View.Top, 0, c.LevelHeight-c.View.Height)
}

// Apply transforms a world rect to screen coordinates
func (c *Camera) Apply(r vmath.Rect) vmath.Rect {
	return vmath.Rect{
		Left:   (r.Left - c.View.Left) * c.ZoomLevel,
		Top:    (r.Top - c.View.Top) * c.ZoomLevel,
		Width:  r.Width * c.ZoomLevel,
		Height: r.Height * c.ZoomLevel,
	}
}

// ApplyPos transforms a world point to screen coordinates
func (c *Camera) ApplyPos(x, y float64) (float64, float64) {
	return (x - c.View.Left) * c.ZoomLevel, (y - c.View.Top) * c.ZoomLevel
}

// ReverseApply is the exact inverse of ApplyPos
func (c *Camera) ReverseApply(screenX, screenY float64) (float64, float64) {
	return screenX/c.ZoomLevel + c.View.Left, screenY/c.ZoomLevel + c.View.Top
}
