package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/chessdroid108/TagArena/entity"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Color converts to a tcell color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	RGBBackground = RGB{26, 27, 38}
	RGBFloor      = RGB{60, 62, 82}
	RGBLava       = RGB{220, 70, 40}
	RGBWhite      = RGB{255, 255, 255}
	RGBIce        = RGB{170, 220, 255}

	// One body color per player slot
	PlayerColors = []RGB{
		{235, 80, 80},
		{80, 160, 235},
		{90, 210, 120},
		{235, 200, 80},
	}
)

// PlatformColors keys platform fill by behavior
var PlatformColors = map[entity.PlatformType]RGB{
	entity.PlatformRegular: {120, 124, 153},
	entity.PlatformSticky:  {150, 110, 60},
	entity.PlatformJump:    {110, 200, 110},
	entity.PlatformSpeed:   {200, 140, 220},

	entity.PlatformPassthrough: {90, 94, 120},
}

// ObstacleColors keys obstacle fill by kind
var ObstacleColors = map[entity.ObstacleKind]RGB{
	entity.ObstacleStatic:   {130, 130, 130},
	entity.ObstacleMoving:   {180, 150, 90},
	entity.ObstacleRotating: {160, 110, 200},
	entity.ObstacleDamaging: {210, 70, 70},
	entity.ObstacleBouncing: {80, 200, 200},
}

// PowerUpColors keys pickup glyph color by kind
var PowerUpColors = map[entity.PowerUpKind]RGB{
	entity.PowerUpSpeed:     {250, 220, 80},
	entity.PowerUpShield:    {120, 180, 250},
	entity.PowerUpSuperJump: {120, 240, 140},
	entity.PowerUpInvisible: {180, 180, 190},
	entity.PowerUpFreeze:    {150, 230, 255},
}
