package feature

import (
	"math"

	"halloweenhaunt/internal/entities"
)

const (
	trapTriggerRadius = 40.0
	trapDamageRadius  = 60.0
	trapFuseTicks     = 30
)

// Trap is a proximity-armed jack-o'-lantern. Once the player wanders into
// the trigger radius it arms and detonates after a fixed fuse regardless of
// where the player goes, damaging them only if still inside the larger
// damage radius at detonation.
type Trap struct {
	X, Y      float64
	Triggered bool
	fuse      int
}

func NewTrap(x, y float64) *Trap {
	return &Trap{X: x, Y: y}
}

// Update advances the trap one tick. Reports true exactly once, on the
// detonation tick; the caller removes the trap afterwards.
func (t *Trap) Update(p *entities.Player) bool {
	if !t.Triggered {
		if math.Hypot(p.X-t.X, p.Y-t.Y) <= trapTriggerRadius {
			t.Triggered = true
		}
		return false
	}

	t.fuse++
	if t.fuse < trapFuseTicks {
		return false
	}
	if math.Hypot(p.X-t.X, p.Y-t.Y) <= trapDamageRadius {
		p.TakeDamage()
	}
	return true
}
