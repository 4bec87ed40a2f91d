package systems

import (
	"math"
	"testing"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
	"github.com/chessdroid108/TagArena/level"
)

func TestPhysicsVelocityBlend(t *testing.T) {
	w, _ := newTestWorld(level.Level{Name: "test"})
	sys := NewPhysicsSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 300
	p.VX = 100
	p.MoveDir = 1

	sys.Update(w, tickDt)

	// Airborne: air resistance, then the low-pass blend toward the target
	expected := 100 * constants.AirResistance
	expected = expected*constants.VelocityBlendKeep + p.Speed*tickDt*constants.VelocityBlendGain
	if math.Abs(p.VX-expected) > 1e-9 {
		t.Errorf("Expected blended VX %v, got %v", expected, p.VX)
	}
}

func TestPhysicsFallSpeedClamp(t *testing.T) {
	w, _ := newTestWorld(level.Level{Name: "test"})
	sys := NewPhysicsSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 300
	p.VY = constants.MaxFallSpeed + 200

	sys.Update(w, tickDt)
	if p.VY > constants.MaxFallSpeed {
		t.Errorf("Expected fall speed capped at %v, got %v", constants.MaxFallSpeed, p.VY)
	}
}

func TestPhysicsGroundFriction(t *testing.T) {
	w, _ := newTestWorld(level.Level{Name: "test"})
	sys := NewPhysicsSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 300
	p.OnGround = true
	p.VX = 100

	sys.Update(w, tickDt)
	expected := 100 * constants.GroundFriction * constants.VelocityBlendKeep
	if math.Abs(p.VX-expected) > 1e-9 {
		t.Errorf("Expected friction-damped VX %v, got %v", expected, p.VX)
	}
	if p.VY != 0 {
		t.Errorf("Expected no gravity while grounded, got VY %v", p.VY)
	}
}

func TestPhysicsTagCooldownCountsInMillis(t *testing.T) {
	w, _ := newTestWorld(level.Level{Name: "test"})
	sys := NewPhysicsSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 300
	p.TagCooldown = constants.TagCooldownMillis

	// 30 ticks = 0.5s = 500ms burned
	for i := 0; i < 30; i++ {
		sys.Update(w, tickDt)
	}
	if math.Abs(p.TagCooldown-500) > 1.0 {
		t.Errorf("Expected ~500ms cooldown left, got %v", p.TagCooldown)
	}
}

func TestPhysicsFrozenPlayerHolds(t *testing.T) {
	w, _ := newTestWorld(level.Level{Name: "test"})
	sys := NewPhysicsSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 300
	p.VX, p.VY = 100, 100
	p.Freeze(0.5)

	for i := 0; i < 10; i++ {
		sys.Update(w, tickDt)
	}
	if p.X != 400 || p.Y != 300 {
		t.Errorf("Expected frozen player to hold position, got (%v, %v)", p.X, p.Y)
	}
	if p.VX != 100 || p.VY != 100 {
		t.Errorf("Expected frozen velocity untouched, got (%v, %v)", p.VX, p.VY)
	}

	// Timer elapses and motion resumes
	for i := 0; i < 25; i++ {
		sys.Update(w, tickDt)
	}
	if p.IsFrozen {
		t.Errorf("Expected thaw after the freeze duration")
	}
	if p.X == 400 {
		t.Errorf("Expected motion to resume after thaw")
	}
}

func TestPhysicsDyingCountdownAndRespawn(t *testing.T) {
	lv := level.Level{
		Name: "test",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 120, Width: 100, Type: entity.PlatformRegular},
		},
	}
	w, q := newTestWorld(lv)
	sys := NewPhysicsSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 550
	p.StartDying()

	ticks := int(constants.DeathSeconds/tickDt) + 2
	for i := 0; i < ticks; i++ {
		sys.Update(w, tickDt)
	}

	if p.IsDying {
		t.Errorf("Expected respawn after the death countdown")
	}
	// A couple of post-respawn gravity ticks have already run
	expected := 120.0 - constants.PlatformHeight/2 - constants.PlayerRadius
	if math.Abs(p.Y-expected) > 2.0 {
		t.Errorf("Expected respawn near Y %v, got %v", expected, p.Y)
	}
	if !containsType(drainTypes(q), event.TypeRespawn) {
		t.Errorf("Expected a respawn event")
	}
}

func TestPhysicsPowerUpExpiryEmits(t *testing.T) {
	w, q := newTestWorld(level.Level{Name: "test"})
	sys := NewPhysicsSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 300
	p.ApplySelfPowerUp(entity.PowerUpShield)
	p.ActivePowerUps[entity.PowerUpShield] = 2 * tickDt

	sys.Update(w, tickDt)
	if containsType(drainTypes(q), event.TypePowerUpExpired) {
		t.Fatalf("Expected no expiry on the first tick")
	}

	sys.Update(w, tickDt)
	if !containsType(drainTypes(q), event.TypePowerUpExpired) {
		t.Errorf("Expected expiry event on the second tick")
	}
	if p.HasShield {
		t.Errorf("Expected shield cleared at expiry")
	}
}
