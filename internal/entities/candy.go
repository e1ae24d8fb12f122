package entities

type CandyKind int

const (
	CandyNormal CandyKind = iota
	CandyCursed
	CandyBonus
)

const (
	NormalCandyPoints = 10
	CursedCandyPoints = 20
	BonusCandyPoints  = 25
)

// Candy is a collectible. Collection is a one-way transition; a second
// Collect call is a no-op.
type Candy struct {
	X, Y      float64
	Kind      CandyKind
	Points    int
	Collected bool
}

// Collect marks the candy collected and applies its effects to the player.
// Returns false if the candy was already collected.
func (c *Candy) Collect(p *Player) bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	p.CollectCandy(c.Points)

	switch c.Kind {
	case CandyCursed:
		// Cursed candy grants a short speed boost rather than a slowdown.
		p.AddPowerUp(PowerSpeedBoost, 300)
	case CandyBonus:
		p.Score += c.Points
		p.Heal(1)
	}
	return true
}
