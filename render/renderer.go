package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/vmath"
)

// Renderer draws the world onto a terminal screen. World coordinates go
// through the camera to the logical screen, then scale to whatever cell
// grid the terminal actually has.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one full frame and flushes it
func (r *Renderer) Draw(w *engine.World) {
	bg := tcell.StyleDefault.Background(RGBBackground.Color())
	r.screen.Fill(' ', bg)

	tw, th := r.screen.Size()
	if tw < 1 || th < 2 {
		r.screen.Show()
		return
	}
	// Bottom row is reserved for the HUD
	sx := float64(tw) / constants.ScreenWidth
	sy := float64(th-1) / constants.ScreenHeight

	r.drawFloor(w, sx, sy, tw, th-1)
	for _, p := range w.Platforms {
		r.fillRect(w, p.Rect(), PlatformColors[p.Type], sx, sy)
	}
	for _, o := range w.Obstacles {
		r.drawObstacle(w, o, sx, sy)
	}
	for _, pu := range w.PowerUps {
		r.drawPowerUp(w, pu, sx, sy)
	}
	for i, p := range w.Players {
		r.drawPlayer(w, i, p, sx, sy)
	}
	r.drawHUD(w, tw, th)

	r.screen.Show()
}

// drawFloor paints the in-view slice of the ground line
func (r *Renderer) drawFloor(w *engine.World, sx, sy float64, tw, th int) {
	floor := vmath.Rect{
		Left:   0,
		Top:    constants.ScreenHeight,
		Width:  constants.LevelWidth,
		Height: constants.LevelHeight - constants.ScreenHeight,
	}
	c := RGBFloor
	if w.Level.LethalFloor {
		c = RGBLava
	}
	r.fillRect(w, floor, c, sx, sy)
}

func (r *Renderer) drawObstacle(w *engine.World, o *entity.Obstacle, sx, sy float64) {
	c := ObstacleColors[o.Kind]
	if o.Kind == entity.ObstacleRotating {
		// The hitbox stays the AABB; the outline just spins
		for _, pt := range o.CollisionShape() {
			x, y := w.Camera.ApplyPos(pt.X, pt.Y)
			r.plot(int(x*sx), int(y*sy), '*', c)
		}
		return
	}
	r.fillRect(w, o.Rect(), c, sx, sy)
}

func (r *Renderer) drawPowerUp(w *engine.World, pu *entity.PowerUp, sx, sy float64) {
	if pu.Flashing() && math.Mod(pu.Lifetime, 0.3) < 0.15 {
		return
	}
	bob := math.Sin(pu.BobPhase*0.1) * 5
	x, y := w.Camera.ApplyPos(pu.X, pu.Y+bob)
	r.plot(int(x*sx), int(y*sy), glyphFor(pu.Kind), PowerUpColors[pu.Kind])
}

func glyphFor(kind entity.PowerUpKind) rune {
	switch kind {
	case entity.PowerUpSpeed:
		return '»'
	case entity.PowerUpShield:
		return 'O'
	case entity.PowerUpSuperJump:
		return '^'
	case entity.PowerUpInvisible:
		return '?'
	case entity.PowerUpFreeze:
		return '❄'
	}
	return '+'
}

func (r *Renderer) drawPlayer(w *engine.World, idx int, p *entity.Player, sx, sy float64) {
	c := PlayerColors[idx%len(PlayerColors)]
	switch {
	case p.IsInvisible:
		// Faint ghost so the local player can still find themselves
		c = RGBBackground.Blend(c, 0.25)
	case p.IsFrozen:
		c = RGBIce
	case p.DamageFlash > 0 && math.Mod(p.DamageFlash, 0.1) < 0.05:
		c = RGBWhite
	}

	body := p.Rect()
	r.fillRect(w, body, c, sx, sy)

	cx, cy := w.Camera.ApplyPos(p.X, p.Y)
	px, py := int(cx*sx), int(cy*sy)
	if p.IsTagger {
		r.plot(px, py-1, '!', RGBWhite)
	}
	if p.HasShield {
		r.plot(px-1, py, '(', RGBWhite)
		r.plot(px+1, py, ')', RGBWhite)
	}
	if p.IsDying {
		r.plot(px, py, 'x', RGBWhite)
	}
}

func (r *Renderer) drawHUD(w *engine.World, tw, th int) {
	style := tcell.StyleDefault.
		Background(RGBBackground.Color()).
		Foreground(RGBWhite.Color())

	line := fmt.Sprintf(" %s  %02d:%02d ", w.Level.Name,
		int(w.RoundTimeLeft)/60, int(w.RoundTimeLeft)%60)
	for i, p := range w.Players {
		tag := " "
		if p.IsTagger {
			tag = "!"
		}
		line += fmt.Sprintf(" P%d%s:%d ", i+1, tag, p.Score)
	}
	r.drawText(0, th-1, line, style)

	if w.Over {
		msg := "Time up, it's a draw"
		if w.Winner >= 0 {
			msg = fmt.Sprintf("Player %d wins!", w.Winner+1)
		}
		r.drawText((tw-len(msg))/2, th/2, msg, style.Bold(true))
	}
}

// fillRect paints a world rect as a solid block of cells
func (r *Renderer) fillRect(w *engine.World, rect vmath.Rect, c RGB, sx, sy float64) {
	sr := w.Camera.Apply(rect)
	x0 := int(sr.Left * sx)
	y0 := int(sr.Top * sy)
	x1 := int(sr.Right() * sx)
	y1 := int(sr.Bottom() * sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	style := tcell.StyleDefault.Background(c.Color())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) plot(x, y int, ch rune, c RGB) {
	style := tcell.StyleDefault.
		Background(RGBBackground.Color()).
		Foreground(c.Color())
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
