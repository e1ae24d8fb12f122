package feature

import (
	"math/rand"

	"halloweenhaunt/internal/entities"
)

// Reward granted when the altar puzzle is solved.
const (
	puzzleRewardPoints = 100
	puzzleRewardHeal   = 1
)

// Manager runs the per-level special features. At most one puzzle and one
// dig site accept input at a time; the interaction path activates the first
// eligible feature it finds.
type Manager struct {
	Puzzles  []*SymbolPuzzle
	DigSites []*DigSite
	Traps    []*Trap

	puzzle    *SymbolPuzzle
	activeDig *DigSite
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) AddPuzzle(x, y float64, rng *rand.Rand) {
	m.Puzzles = append(m.Puzzles, NewSymbolPuzzle(x, y, rng))
}

func (m *Manager) AddDigSite(x, y float64) {
	m.DigSites = append(m.DigSites, NewDigSite(x, y))
}

func (m *Manager) AddTrap(x, y float64) {
	m.Traps = append(m.Traps, NewTrap(x, y))
}

// ActivePuzzle returns the puzzle currently receiving input, if any.
func (m *Manager) ActivePuzzle() *SymbolPuzzle { return m.puzzle }

// ActiveDig returns the dig site currently receiving input, if any.
func (m *Manager) ActiveDig() *DigSite { return m.activeDig }

// Update advances active features one tick. Directional input is
// edge-triggered and steers the active puzzle; interact is the edge-triggered
// action that submits the puzzle or performs a dig. Traps always run. The
// returned message, when non-empty, is shown on the HUD.
func (m *Manager) Update(p *entities.Player, in entities.Input, interact bool) string {
	message := ""

	if m.puzzle != nil {
		if in.Left {
			m.puzzle.SwapLeft()
		}
		if in.Right {
			m.puzzle.SwapRight()
		}
		if interact && m.puzzle.Submit() {
			p.Score += puzzleRewardPoints
			p.Heal(puzzleRewardHeal)
			message = "Church puzzle solved! +100 points, +1 health!"
			m.puzzle = nil
		}
	}

	if m.activeDig != nil {
		m.activeDig.Update()
		if interact && m.activeDig.Dig() {
			p.AddPowerUp(entities.PowerZombiePower, entities.ZombiePowerDuration)
			message = "Found ancient relic! Zombie power activated!"
			m.activeDig = nil
		}
	}

	// Traps detonate on their own schedule and are removed afterwards.
	remaining := m.Traps[:0]
	for _, t := range m.Traps {
		if !t.Update(p) {
			remaining = append(remaining, t)
		}
	}
	m.Traps = remaining

	return message
}

// HandleInteraction tries to activate a feature near the player. The first
// eligible feature in iteration order wins; nothing activates while another
// of the same kind is already active.
func (m *Manager) HandleInteraction(p *entities.Player) string {
	if m.puzzle == nil {
		for _, puz := range m.Puzzles {
			if puz.Completed {
				continue
			}
			if ok, msg := puz.Interact(p); ok {
				m.puzzle = puz
				return msg
			}
		}
	}

	if m.activeDig == nil {
		for _, site := range m.DigSites {
			if site.Completed {
				continue
			}
			if ok, msg := site.Interact(p); ok {
				m.activeDig = site
				return msg
			}
		}
	}

	return ""
}
