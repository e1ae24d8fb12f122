package feature

import (
	"math"
	"math/rand"

	"halloweenhaunt/internal/entities"
)

// Symbol is one of the four altar tokens the puzzle rearranges.
type Symbol int

const (
	SymbolCross Symbol = iota
	SymbolCandle
	SymbolBible
	SymbolAngel
)

func (s Symbol) String() string {
	switch s {
	case SymbolCross:
		return "cross"
	case SymbolCandle:
		return "candle"
	case SymbolBible:
		return "bible"
	case SymbolAngel:
		return "angel"
	default:
		return "?"
	}
}

const puzzleInteractRadius = 50.0

// SymbolPuzzle is the church altar mini-game: swap adjacent symbols until
// the order matches the target, then submit. A wrong submission reshuffles
// the current order as a penalty; a correct one completes the puzzle for
// good.
type SymbolPuzzle struct {
	X, Y      float64
	Active    bool
	Completed bool

	Order    []Symbol
	Target   []Symbol
	Selected int

	rng *rand.Rand
}

func NewSymbolPuzzle(x, y float64, rng *rand.Rand) *SymbolPuzzle {
	p := &SymbolPuzzle{
		X:      x,
		Y:      y,
		Order:  []Symbol{SymbolCross, SymbolCandle, SymbolBible, SymbolAngel},
		Target: []Symbol{SymbolAngel, SymbolBible, SymbolCandle, SymbolCross},
		rng:    rng,
	}
	p.shuffle()
	return p
}

func (p *SymbolPuzzle) shuffle() {
	if p.rng == nil {
		return
	}
	p.rng.Shuffle(len(p.Order), func(i, j int) {
		p.Order[i], p.Order[j] = p.Order[j], p.Order[i]
	})
}

// Interact activates the puzzle when the player stands close enough.
func (p *SymbolPuzzle) Interact(pl *entities.Player) (bool, string) {
	if math.Hypot(pl.X-p.X, pl.Y-p.Y) > puzzleInteractRadius {
		return false, "Get closer to the altar!"
	}
	if p.Completed {
		return false, "Puzzle already solved!"
	}
	if !p.Active {
		p.Active = true
		return true, "Rearrange the symbols, then confirm."
	}
	return false, ""
}

// SwapLeft swaps the selected symbol with its left neighbor.
func (p *SymbolPuzzle) SwapLeft() {
	if !p.Active || p.Completed || p.Selected == 0 {
		return
	}
	p.Order[p.Selected], p.Order[p.Selected-1] = p.Order[p.Selected-1], p.Order[p.Selected]
	p.Selected--
}

// SwapRight swaps the selected symbol with its right neighbor.
func (p *SymbolPuzzle) SwapRight() {
	if !p.Active || p.Completed || p.Selected >= len(p.Order)-1 {
		return
	}
	p.Order[p.Selected], p.Order[p.Selected+1] = p.Order[p.Selected+1], p.Order[p.Selected]
	p.Selected++
}

// Submit checks the current order against the target. A mismatch reshuffles
// and keeps the puzzle active; a match completes it once, irreversibly.
func (p *SymbolPuzzle) Submit() bool {
	if !p.Active || p.Completed {
		return false
	}
	for i := range p.Order {
		if p.Order[i] != p.Target[i] {
			p.shuffle()
			return false
		}
	}
	p.Completed = true
	p.Active = false
	return true
}
