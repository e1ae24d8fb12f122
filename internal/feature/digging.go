package feature

import (
	"math"

	"halloweenhaunt/internal/entities"
)

const (
	digInteractRadius = 30.0

	// Discrete dig actions required, and the per-action cooldown in ticks.
	RequiredDigs = 5
	DigCooldown  = 30
)

// DigSite is the cemetery digging mini-game: a fixed number of dig actions,
// each rate-limited by a cooldown, unearths the treasure once.
type DigSite struct {
	X, Y      float64
	Active    bool
	Completed bool

	Progress int
	cooldown int
}

func NewDigSite(x, y float64) *DigSite {
	return &DigSite{X: x, Y: y}
}

// Interact starts digging when the player stands over the site.
func (d *DigSite) Interact(p *entities.Player) (bool, string) {
	if math.Hypot(p.X-d.X, p.Y-d.Y) > digInteractRadius {
		return false, "Find a good spot to dig!"
	}
	if d.Completed {
		return false, "Already dug up treasure here!"
	}
	if !d.Active {
		d.Active = true
		return true, "Dig here! Keep at it."
	}
	return false, ""
}

// Dig performs one dig action. Calls during the cooldown are no-ops that do
// not advance progress. Reports completion on the final dig.
func (d *DigSite) Dig() bool {
	if !d.Active || d.Completed || d.cooldown > 0 {
		return false
	}
	d.Progress++
	d.cooldown = DigCooldown
	if d.Progress >= RequiredDigs {
		d.Completed = true
		d.Active = false
		return true
	}
	return false
}

// Update ticks the dig cooldown.
func (d *DigSite) Update() {
	if d.cooldown > 0 {
		d.cooldown--
	}
}
