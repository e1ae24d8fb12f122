package entities

import (
	"math"
	"testing"

	"halloweenhaunt/internal/tilemap"
)

func openMap() *tilemap.Map {
	return tilemap.New(30, 20, 32)
}

func TestSpeedNeverExceedsCap(t *testing.T) {
	m := openMap()
	p := NewPlayer(480, 320)
	in := Input{Right: true, Down: true}

	for i := 0; i < 200; i++ {
		p.Update(in, m)
		if speed := math.Hypot(p.VX, p.VY); speed > PlayerMaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %.4f exceeds cap %.1f", i, speed, PlayerMaxSpeed)
		}
	}
}

func TestSpeedBoostRaisesCap(t *testing.T) {
	m := openMap()
	p := NewPlayer(480, 320)
	p.AddPowerUp(PowerSpeedBoost, 1000)
	in := Input{Right: true}

	boosted := PlayerMaxSpeed * 1.5
	reached := false
	for i := 0; i < 200; i++ {
		p.Update(in, m)
		speed := math.Hypot(p.VX, p.VY)
		if speed > boosted+1e-9 {
			t.Fatalf("tick %d: speed %.4f exceeds boosted cap %.2f", i, speed, boosted)
		}
		if speed > PlayerMaxSpeed {
			reached = true
		}
	}
	if !reached {
		t.Fatal("speed boost never pushed player past base cap")
	}
}

func TestDecelerationOnIdleAxis(t *testing.T) {
	m := openMap()
	p := NewPlayer(480, 320)
	for i := 0; i < 30; i++ {
		p.Update(Input{Right: true}, m)
	}
	before := p.VX
	p.Update(Input{}, m)
	if p.VX >= before {
		t.Fatalf("velocity did not decay: before %.3f after %.3f", before, p.VX)
	}
}

func TestWallCollisionStopsAxis(t *testing.T) {
	m := openMap()
	// Wall column immediately to the player's right.
	for y := 0; y < m.Height; y++ {
		m.Set(16, y, tilemap.KindWall)
	}
	p := NewPlayer(15*32+16, 320)
	for i := 0; i < 120; i++ {
		p.Update(Input{Right: true, Down: true}, m)
	}
	if p.VX != 0 {
		t.Fatalf("vx should be zeroed against wall, got %.3f", p.VX)
	}
	// The Y axis resolves independently, so the player slides downward.
	if p.Y <= 320 {
		t.Fatalf("player should slide along the wall, y = %.1f", p.Y)
	}
	maxX := float64(16*32) - p.Radius
	if p.X > maxX+1e-9 {
		t.Fatalf("player penetrated wall: x = %.2f, limit %.2f", p.X, maxX)
	}
}

func TestTakeDamage(t *testing.T) {
	p := NewPlayer(0, 0)

	if !p.TakeDamage() {
		t.Fatal("first hit should land")
	}
	if p.Health != PlayerStartHealth-1 {
		t.Fatalf("health = %d, want %d", p.Health, PlayerStartHealth-1)
	}
	if p.InvincibleTimer != InvincibilityTicks {
		t.Fatalf("invincibility = %d, want %d", p.InvincibleTimer, InvincibilityTicks)
	}

	// Invincible: no-op.
	if p.TakeDamage() {
		t.Fatal("hit during invincibility should not land")
	}
	if p.Health != PlayerStartHealth-1 {
		t.Fatalf("health changed during invincibility: %d", p.Health)
	}

	// Shield blocks even after invincibility runs out.
	p.InvincibleTimer = 0
	p.AddPowerUp(PowerShield, 100)
	if p.TakeDamage() {
		t.Fatal("hit with shield active should not land")
	}
}

func TestHealClampsToMax(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Heal(10)
	if p.Health != PlayerMaxHealth {
		t.Fatalf("health = %d, want max %d", p.Health, PlayerMaxHealth)
	}
}

func TestCollectCandyDoublePoints(t *testing.T) {
	p := NewPlayer(0, 0)
	p.CollectCandy(10)
	if p.Score != 10 || p.Candies != 1 {
		t.Fatalf("score=%d candies=%d, want 10/1", p.Score, p.Candies)
	}
	p.AddPowerUp(PowerDoublePoints, 100)
	p.CollectCandy(10)
	if p.Score != 30 || p.Candies != 2 {
		t.Fatalf("score=%d candies=%d, want 30/2", p.Score, p.Candies)
	}
}

func TestAddPowerUpReplacesSameKind(t *testing.T) {
	p := NewPlayer(0, 0)
	p.AddPowerUp(PowerInvisibility, 100)
	p.AddPowerUp(PowerInvisibility, 500)

	list := p.PowerUps()
	if len(list) != 1 {
		t.Fatalf("expected single entry, got %d", len(list))
	}
	if list[0].Duration != 500 {
		t.Fatalf("duration = %d, want 500", list[0].Duration)
	}
}

func TestPowerUpExpires(t *testing.T) {
	m := openMap()
	p := NewPlayer(480, 320)
	p.AddPowerUp(PowerShield, 3)
	for i := 0; i < 4; i++ {
		p.Update(Input{}, m)
	}
	if p.Has(PowerShield) {
		t.Fatal("shield should have expired")
	}
}

func TestFacingUpdatesAboveDeadzone(t *testing.T) {
	m := openMap()
	p := NewPlayer(480, 320)
	p.Facing = math.Pi / 3
	p.Update(Input{}, m) // near-zero speed: facing must not jitter
	if p.Facing != math.Pi/3 {
		t.Fatalf("facing changed at rest: %.3f", p.Facing)
	}
	for i := 0; i < 10; i++ {
		p.Update(Input{Right: true}, m)
	}
	if math.Abs(p.Facing) > 1e-9 {
		t.Fatalf("facing = %.3f, want 0 (east)", p.Facing)
	}
}
