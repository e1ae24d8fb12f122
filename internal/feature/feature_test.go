package feature

import (
	"math/rand"
	"testing"

	"halloweenhaunt/internal/entities"
)

func solvedPuzzle(t *testing.T) *SymbolPuzzle {
	t.Helper()
	p := NewSymbolPuzzle(100, 100, rand.New(rand.NewSource(1)))
	p.Active = true
	copy(p.Order, p.Target)
	return p
}

func TestPuzzleInteractDistance(t *testing.T) {
	puz := NewSymbolPuzzle(100, 100, rand.New(rand.NewSource(1)))
	far := entities.NewPlayer(300, 300)
	if ok, msg := puz.Interact(far); ok || msg != "Get closer to the altar!" {
		t.Fatalf("far interact = %v, %q", ok, msg)
	}
	near := entities.NewPlayer(110, 100)
	if ok, _ := puz.Interact(near); !ok {
		t.Fatal("near interact should activate the puzzle")
	}
	if !puz.Active {
		t.Fatal("puzzle should be active after interact")
	}
}

func TestPuzzleAdjacentSwaps(t *testing.T) {
	puz := NewSymbolPuzzle(0, 0, nil)
	puz.Active = true
	puz.Order = []Symbol{SymbolBible, SymbolAngel, SymbolCandle, SymbolCross}
	puz.Selected = 1

	puz.SwapLeft()
	want := []Symbol{SymbolAngel, SymbolBible, SymbolCandle, SymbolCross}
	for i := range want {
		if puz.Order[i] != want[i] {
			t.Fatalf("after swap order[%d] = %v, want %v", i, puz.Order[i], want[i])
		}
	}
	if puz.Selected != 0 {
		t.Fatalf("selection should follow the symbol, got %d", puz.Selected)
	}

	// Edge positions refuse to swap further.
	puz.SwapLeft()
	if puz.Selected != 0 {
		t.Fatal("SwapLeft at index 0 must be a no-op")
	}
	puz.Selected = len(puz.Order) - 1
	puz.SwapRight()
	if puz.Selected != len(puz.Order)-1 {
		t.Fatal("SwapRight at last index must be a no-op")
	}
}

func TestPuzzleSubmitMismatchReshuffles(t *testing.T) {
	puz := NewSymbolPuzzle(0, 0, rand.New(rand.NewSource(7)))
	puz.Active = true
	// Force a known wrong order.
	puz.Order = []Symbol{SymbolCross, SymbolCandle, SymbolBible, SymbolAngel}
	if puz.Submit() {
		t.Fatal("mismatched order must not complete")
	}
	if puz.Completed {
		t.Fatal("puzzle must stay incomplete after a wrong submit")
	}
	if !puz.Active {
		t.Fatal("puzzle must stay active after a wrong submit")
	}
}

func TestPuzzleSubmitMatchCompletes(t *testing.T) {
	puz := solvedPuzzle(t)
	if !puz.Submit() {
		t.Fatal("matching order should complete the puzzle")
	}
	if !puz.Completed || puz.Active {
		t.Fatalf("completed=%v active=%v after solve", puz.Completed, puz.Active)
	}
	// Completion is irreversible.
	if puz.Submit() {
		t.Fatal("second submit must not report completion again")
	}
	pl := entities.NewPlayer(puz.X, puz.Y)
	if ok, msg := puz.Interact(pl); ok || msg != "Puzzle already solved!" {
		t.Fatalf("interact after solve = %v, %q", ok, msg)
	}
}

func TestDigSiteCooldownPacing(t *testing.T) {
	site := NewDigSite(50, 50)
	pl := entities.NewPlayer(55, 50)
	if ok, _ := site.Interact(pl); !ok {
		t.Fatal("close interact should activate the dig site")
	}

	if site.Dig() {
		t.Fatal("first dig must not complete the site")
	}
	if site.Progress != 1 {
		t.Fatalf("first dig progress = %d, want 1", site.Progress)
	}
	// Calls during the cooldown are no-ops.
	if site.Dig() {
		t.Fatal("dig during cooldown must not complete")
	}
	if site.Progress != 1 {
		t.Fatalf("cooldown dig advanced progress to %d", site.Progress)
	}

	done := false
	for i := 0; i < 4; i++ {
		for tick := 0; tick < DigCooldown; tick++ {
			site.Update()
		}
		done = site.Dig()
	}
	if !done {
		t.Fatal("fifth paced dig should complete the site")
	}
	if !site.Completed || site.Active {
		t.Fatalf("completed=%v active=%v after final dig", site.Completed, site.Active)
	}
	if ok, msg := site.Interact(pl); ok || msg != "Already dug up treasure here!" {
		t.Fatalf("interact after completion = %v, %q", ok, msg)
	}
}

func TestDigSiteInteractDistance(t *testing.T) {
	site := NewDigSite(50, 50)
	far := entities.NewPlayer(200, 200)
	if ok, msg := site.Interact(far); ok || msg != "Find a good spot to dig!" {
		t.Fatalf("far interact = %v, %q", ok, msg)
	}
	if site.Dig() {
		t.Fatal("inactive site must not dig")
	}
}

func TestTrapArmsAndDetonates(t *testing.T) {
	trap := NewTrap(100, 100)
	pl := entities.NewPlayer(500, 500)

	for i := 0; i < 100; i++ {
		if trap.Update(pl) {
			t.Fatal("trap must not detonate without a trigger")
		}
	}
	if trap.Triggered {
		t.Fatal("trap armed with the player far away")
	}

	// Step inside the trigger radius, then retreat beyond the damage radius.
	pl.X, pl.Y = 130, 100
	trap.Update(pl)
	if !trap.Triggered {
		t.Fatal("trap should arm inside the trigger radius")
	}
	pl.X = 300
	detonated := false
	for i := 0; i < trapFuseTicks+1 && !detonated; i++ {
		detonated = trap.Update(pl)
	}
	if !detonated {
		t.Fatal("armed trap must detonate after its fuse")
	}
	if pl.Health != entities.PlayerStartHealth {
		t.Fatalf("player outside the damage radius took damage, health %d", pl.Health)
	}
}

func TestTrapDamagesInsideRadius(t *testing.T) {
	trap := NewTrap(100, 100)
	pl := entities.NewPlayer(100, 100)

	detonated := false
	for i := 0; i < trapFuseTicks+2 && !detonated; i++ {
		detonated = trap.Update(pl)
	}
	if !detonated {
		t.Fatal("trap never detonated")
	}
	if pl.Health != entities.PlayerStartHealth-1 {
		t.Fatalf("health = %d after detonation, want %d", pl.Health, entities.PlayerStartHealth-1)
	}
}

func TestManagerPuzzleFlow(t *testing.T) {
	m := NewManager()
	m.AddPuzzle(100, 100, rand.New(rand.NewSource(3)))
	pl := entities.NewPlayer(100, 100)

	if msg := m.HandleInteraction(pl); msg == "" {
		t.Fatal("interaction near the altar should activate the puzzle")
	}
	if m.ActivePuzzle() == nil {
		t.Fatal("manager should track the active puzzle")
	}

	// Solve it directly, then submit through the manager.
	copy(m.ActivePuzzle().Order, m.ActivePuzzle().Target)
	msg := m.Update(pl, entities.Input{}, true)
	if msg == "" {
		t.Fatal("solving the puzzle should produce a message")
	}
	if pl.Score != puzzleRewardPoints {
		t.Fatalf("score = %d, want %d", pl.Score, puzzleRewardPoints)
	}
	if m.ActivePuzzle() != nil {
		t.Fatal("solved puzzle should be released")
	}
}

func TestManagerDigGrantsZombiePower(t *testing.T) {
	m := NewManager()
	m.AddDigSite(50, 50)
	pl := entities.NewPlayer(50, 50)

	if msg := m.HandleInteraction(pl); msg == "" {
		t.Fatal("interaction over the dig site should activate it")
	}

	var msg string
	for i := 0; i < RequiredDigs; i++ {
		msg = m.Update(pl, entities.Input{}, true)
		for tick := 0; tick < DigCooldown; tick++ {
			m.Update(pl, entities.Input{}, false)
		}
	}
	if msg != "Found ancient relic! Zombie power activated!" {
		t.Fatalf("completion message = %q", msg)
	}
	if !pl.Has(entities.PowerZombiePower) {
		t.Fatal("completing the dig should grant zombie power")
	}
	if m.ActiveDig() != nil {
		t.Fatal("completed dig should be released")
	}
}

func TestManagerRemovesDetonatedTraps(t *testing.T) {
	m := NewManager()
	m.AddTrap(100, 100)
	m.AddTrap(900, 900)
	pl := entities.NewPlayer(100, 100)

	for i := 0; i < trapFuseTicks+2; i++ {
		m.Update(pl, entities.Input{}, false)
	}
	if len(m.Traps) != 1 {
		t.Fatalf("traps remaining = %d, want 1", len(m.Traps))
	}
	if m.Traps[0].X != 900 {
		t.Fatal("the wrong trap was removed")
	}
}
