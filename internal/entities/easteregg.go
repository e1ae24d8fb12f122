package entities

import (
	"fmt"
	"math"
)

type EggKind int

const (
	EggStash EggKind = iota
	EggBonus
	EggPowerUp
	EggPuzzle
	EggDig
	EggSecret
)

const eggInteractionRadius = 20.0

// Reward describes what an easter egg grants. The zero value grants nothing.
type Reward struct {
	Name     string
	Points   int
	Heal     int
	PowerUp  *PowerUpKind
	Duration int
}

// PowerUpReward builds a reward that attaches a timed effect.
func PowerUpReward(name string, kind PowerUpKind, duration int) Reward {
	k := kind
	return Reward{Name: name, PowerUp: &k, Duration: duration}
}

// EasterEgg is a hidden interactable. Secret eggs are invisible until
// activated; activation is one-way.
type EasterEgg struct {
	X, Y      float64
	Kind      EggKind
	Reward    Reward
	Activated bool
	Visible   bool
}

func NewEasterEgg(x, y float64, kind EggKind, reward Reward) *EasterEgg {
	return &EasterEgg{
		X:       x,
		Y:       y,
		Kind:    kind,
		Reward:  reward,
		Visible: kind != EggSecret,
	}
}

// Interact attempts to activate the egg. Out-of-range and repeat attempts
// return a hint message rather than an error.
func (e *EasterEgg) Interact(p *Player) (bool, string) {
	if e.Activated {
		return false, "Already found!"
	}
	if math.Hypot(e.X-p.X, e.Y-p.Y) > eggInteractionRadius {
		return false, "Get closer!"
	}

	e.Activated = true
	e.Visible = true

	p.Score += e.Reward.Points
	if e.Reward.Heal > 0 {
		p.Heal(e.Reward.Heal)
	}
	if e.Reward.PowerUp != nil {
		p.AddPowerUp(*e.Reward.PowerUp, e.Reward.Duration)
	}
	return true, fmt.Sprintf("Found Easter egg: %s!", e.Reward.Name)
}
