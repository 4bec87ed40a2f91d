package systems

import (
	"testing"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
	"github.com/chessdroid108/TagArena/level"
)

func TestCollisionFloorLanding(t *testing.T) {
	w, _ := newTestWorld(level.Level{Name: "test"})
	sys := NewCollisionSystem()
	p := w.Players[0]
	p.X = 400
	p.Y = constants.ScreenHeight + 5
	p.VY = 300
	w.Players[1].X, w.Players[1].Y = 1000, 100

	sys.Update(w, tickDt)

	if !p.OnGround {
		t.Errorf("Expected grounded on the floor")
	}
	if p.Y != constants.ScreenHeight-constants.PlayerRadius {
		t.Errorf("Expected snap to floor at %v, got %v", constants.ScreenHeight-constants.PlayerRadius, p.Y)
	}
	if p.VY != 0 {
		t.Errorf("Expected vertical velocity zeroed, got %v", p.VY)
	}
}

func TestCollisionLethalFloor(t *testing.T) {
	w, q := newTestWorld(level.Level{Name: "test", LethalFloor: true})
	sys := NewCollisionSystem()
	p := w.Players[0]
	p.X = 400
	p.Y = constants.ScreenHeight + 5
	p.VY = 300
	w.Players[1].X, w.Players[1].Y = 1000, 100

	sys.Update(w, tickDt)

	if !p.IsDying {
		t.Errorf("Expected dying state after touching the lethal floor")
	}
	expected := -constants.DefaultJumpForce * constants.LethalFloorBounceFactor
	if p.VY != expected {
		t.Errorf("Expected death bounce %v, got %v", expected, p.VY)
	}

	types := drainTypes(q)
	if !containsType(types, event.TypeDamage) {
		t.Errorf("Expected a damage event")
	}
	if !containsType(types, event.TypeDied) {
		t.Errorf("Expected a died event")
	}
}

func TestCollisionPlatformLanding(t *testing.T) {
	lv := level.Level{
		Name: "test",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 500, Width: 200, Type: entity.PlatformJump},
		},
	}
	w, q := newTestWorld(lv)
	sys := NewCollisionSystem()
	p := w.Players[0]
	// Platform top is at 490; sinking slightly into it while falling fast
	p.X, p.Y = 400, 475
	p.VY = 300
	w.Players[1].X, w.Players[1].Y = 1000, 100

	sys.Update(w, tickDt)

	if !p.OnGround {
		t.Errorf("Expected landing")
	}
	if p.Y != 490-constants.PlayerRadius {
		t.Errorf("Expected snap to platform top, got %v", p.Y)
	}
	if p.CurrentPlatform != 0 {
		t.Errorf("Expected current platform 0, got %d", p.CurrentPlatform)
	}
	if !p.OnJumpPlatform {
		t.Errorf("Expected jump platform effect applied")
	}
	// 300/400 impact is above the land-event threshold
	if !containsType(drainTypes(q), event.TypeLand) {
		t.Errorf("Expected a land event")
	}
}

func TestCollisionSoftLandingStaysSilent(t *testing.T) {
	lv := level.Level{
		Name: "test",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 500, Width: 200, Type: entity.PlatformRegular},
		},
	}
	w, q := newTestWorld(lv)
	sys := NewCollisionSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 475
	p.VY = 50
	w.Players[1].X, w.Players[1].Y = 1000, 100

	sys.Update(w, tickDt)

	if !p.OnGround {
		t.Errorf("Expected landing")
	}
	if containsType(drainTypes(q), event.TypeLand) {
		t.Errorf("Expected no land event below the impact threshold")
	}
}

func TestCollisionPassthroughPlatform(t *testing.T) {
	lv := level.Level{
		Name: "test",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 500, Width: 200, Type: entity.PlatformPassthrough},
		},
	}
	w, _ := newTestWorld(lv)
	sys := NewCollisionSystem()
	p := w.Players[0]
	p.X, p.Y = 400, 475
	p.VY = 300
	p.PassingThrough = true
	w.Players[1].X, w.Players[1].Y = 1000, 100

	sys.Update(w, tickDt)

	if p.OnGround {
		t.Errorf("Expected drop through while holding down")
	}
	if p.VY != 300 {
		t.Errorf("Expected velocity untouched, got %v", p.VY)
	}
}

func TestCollisionPlatformSidePush(t *testing.T) {
	lv := level.Level{
		Name: "test",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 500, Width: 200, Type: entity.PlatformRegular},
		},
	}
	w, _ := newTestWorld(lv)
	sys := NewCollisionSystem()
	p := w.Players[0]
	// Well below the top margin, overlapping the left face
	p.X, p.Y = 290, 505
	p.VX = 100
	w.Players[1].X, w.Players[1].Y = 1000, 100

	sys.Update(w, tickDt)

	if p.OnGround {
		t.Errorf("Expected no landing from a side hit")
	}
	if p.X != 300-constants.PlayerRadius {
		t.Errorf("Expected push-out to %v, got %v", 300-constants.PlayerRadius, p.X)
	}
	if p.VX != 0 {
		t.Errorf("Expected horizontal velocity zeroed, got %v", p.VX)
	}
}

func TestTagSwapsRoles(t *testing.T) {
	w, q := newTestWorld(level.Level{Name: "test"})
	sys := NewCollisionSystem()
	tagger, runner := w.Players[0], w.Players[1]
	tagger.X, tagger.Y = 400, 300
	runner.X, runner.Y = 420, 300

	sys.Update(w, tickDt)

	if tagger.IsTagger {
		t.Errorf("Expected tagger role dropped")
	}
	if !runner.IsTagger {
		t.Errorf("Expected runner to become the tagger")
	}
	if tagger.Score != 1 {
		t.Errorf("Expected score 1 for the tag, got %d", tagger.Score)
	}
	if runner.TagCooldown != constants.TagCooldownMillis {
		t.Errorf("Expected cooldown %v on the new tagger, got %v", constants.TagCooldownMillis, runner.TagCooldown)
	}

	evs := q.Drain()
	var tag *event.TagPayload
	for _, ev := range evs {
		if ev.Type == event.TypeTag {
			tag = ev.Payload.(*event.TagPayload)
		}
	}
	if tag == nil {
		t.Fatalf("Expected a tag event")
	}
	if tag.Tagger != 0 || tag.Tagged != 1 || tag.NewScore != 1 {
		t.Errorf("Expected tag payload {0 1 1}, got %+v", tag)
	}
}

func TestTagCooldownBlocksImmediateReturn(t *testing.T) {
	w, q := newTestWorld(level.Level{Name: "test"})
	sys := NewCollisionSystem()
	w.Players[0].X, w.Players[0].Y = 400, 300
	w.Players[1].X, w.Players[1].Y = 420, 300

	// First pass tags; the pair still overlaps on the second pass
	sys.Update(w, tickDt)
	sys.Update(w, tickDt)

	tags := 0
	for _, typ := range drainTypes(q) {
		if typ == event.TypeTag {
			tags++
		}
	}
	if tags != 1 {
		t.Errorf("Expected a single tag while the cooldown holds, got %d", tags)
	}
	if w.Players[0].Score != 1 || w.Players[1].Score != 0 {
		t.Errorf("Expected scores 1/0, got %d/%d", w.Players[0].Score, w.Players[1].Score)
	}
}

func TestShieldBlocksTag(t *testing.T) {
	w, q := newTestWorld(level.Level{Name: "test"})
	sys := NewCollisionSystem()
	w.Players[0].X, w.Players[0].Y = 400, 300
	w.Players[1].X, w.Players[1].Y = 420, 300
	w.Players[1].HasShield = true

	sys.Update(w, tickDt)

	if !w.Players[0].IsTagger {
		t.Errorf("Expected roles unchanged against a shield")
	}
	if w.Players[0].Score != 0 {
		t.Errorf("Expected no score against a shield, got %d", w.Players[0].Score)
	}
	if containsType(drainTypes(q), event.TypeTag) {
		t.Errorf("Expected no tag event against a shield")
	}
}
