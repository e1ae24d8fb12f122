package entities

import (
	"math"

	"halloweenhaunt/internal/tilemap"
)

const (
	PlayerMaxSpeed     = 3.0
	PlayerAcceleration = 0.2
	PlayerDeceleration = 0.15
	PlayerRadius       = 12.0

	PlayerStartHealth = 3
	PlayerMaxHealth   = 5

	// Ticks of damage immunity after a hit (2 seconds at 60 UPS).
	InvincibilityTicks = 120

	facingDeadzone = 0.1
)

// Player is the trick-or-treater. One instance lives for a whole run; level
// changes reposition it but never replace it.
type Player struct {
	X, Y   float64
	VX, VY float64

	Health          int
	Candies         int
	Score           int
	InvincibleTimer int
	Facing          float64 // radians, updated only above the speed deadzone

	Radius float64

	powerups []PowerUp
}

func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Health: PlayerStartHealth,
		Radius: PlayerRadius,
	}
}

// Update advances one simulation tick: acceleration from input, friction on
// idle axes, speed cap, axis-separated collision, then timers and power-ups.
func (p *Player) Update(in Input, m *tilemap.Map) {
	var ax, ay float64
	if in.Left {
		ax -= PlayerAcceleration
	}
	if in.Right {
		ax += PlayerAcceleration
	}
	if in.Up {
		ay -= PlayerAcceleration
	}
	if in.Down {
		ay += PlayerAcceleration
	}

	p.VX += ax
	p.VY += ay
	if ax == 0 {
		p.VX *= 1.0 - PlayerDeceleration
	}
	if ay == 0 {
		p.VY *= 1.0 - PlayerDeceleration
	}

	maxSpeed := PlayerMaxSpeed * p.SpeedMultiplier()
	speed := math.Hypot(p.VX, p.VY)
	if speed > maxSpeed {
		p.VX = p.VX / speed * maxSpeed
		p.VY = p.VY / speed * maxSpeed
	}

	// Resolve each axis on its own so the player slides along walls instead
	// of stopping dead on diagonal contact.
	newX := p.X + p.VX
	if p.collides(newX, p.Y, m) {
		p.VX = 0
	} else {
		p.X = newX
	}
	newY := p.Y + p.VY
	if p.collides(p.X, newY, m) {
		p.VY = 0
	} else {
		p.Y = newY
	}

	if math.Abs(p.VX) > facingDeadzone || math.Abs(p.VY) > facingDeadzone {
		p.Facing = math.Atan2(p.VY, p.VX)
	}

	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}

	p.tickPowerUps()
}

// collides samples all four corners of the player's bounding square against
// tile solidity.
func (p *Player) collides(x, y float64, m *tilemap.Map) bool {
	ts := float64(m.TileSize)
	corners := [4][2]float64{
		{x - p.Radius, y - p.Radius},
		{x + p.Radius, y - p.Radius},
		{x - p.Radius, y + p.Radius},
		{x + p.Radius, y + p.Radius},
	}
	for _, c := range corners {
		tx := int(math.Floor(c[0] / ts))
		ty := int(math.Floor(c[1] / ts))
		if m.IsSolid(tx, ty) {
			return true
		}
	}
	return false
}

func (p *Player) tickPowerUps() {
	kept := p.powerups[:0]
	for _, pu := range p.powerups {
		if pu.Duration > 0 {
			kept = append(kept, pu)
		}
	}
	p.powerups = kept
	for i := range p.powerups {
		p.powerups[i].Duration--
	}
}

// TakeDamage applies one point of damage unless the player is invincible or
// shielded. Reports whether damage was actually taken.
func (p *Player) TakeDamage() bool {
	if p.InvincibleTimer > 0 || p.Has(PowerShield) {
		return false
	}
	p.Health--
	p.InvincibleTimer = InvincibilityTicks
	return true
}

func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > PlayerMaxHealth {
		p.Health = PlayerMaxHealth
	}
}

// CollectCandy adds one candy and the given points, doubled while the
// double-points effect is active.
func (p *Player) CollectCandy(points int) {
	if p.Has(PowerDoublePoints) {
		points *= 2
	}
	p.Candies++
	p.Score += points
}

// AddPowerUp attaches a timed effect. A duplicate kind replaces the prior
// instance's remaining duration rather than stacking.
func (p *Player) AddPowerUp(kind PowerUpKind, duration int) {
	for i := range p.powerups {
		if p.powerups[i].Kind == kind {
			p.powerups[i].Duration = duration
			return
		}
	}
	p.powerups = append(p.powerups, PowerUp{Kind: kind, Duration: duration})
}

func (p *Player) Has(kind PowerUpKind) bool {
	for _, pu := range p.powerups {
		if pu.Kind == kind {
			return true
		}
	}
	return false
}

// PowerUps returns a copy of the active effect set for presentation.
func (p *Player) PowerUps() []PowerUp {
	out := make([]PowerUp, len(p.powerups))
	copy(out, p.powerups)
	return out
}

func (p *Player) SpeedMultiplier() float64 {
	if p.Has(PowerSpeedBoost) {
		return 1.5
	}
	return 1.0
}
