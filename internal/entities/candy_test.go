package entities

import "testing"

func TestCollectIsIdempotent(t *testing.T) {
	p := NewPlayer(0, 0)
	c := &Candy{Kind: CandyNormal, Points: NormalCandyPoints}

	if !c.Collect(p) {
		t.Fatal("first collect should succeed")
	}
	if c.Collect(p) {
		t.Fatal("second collect should be a no-op")
	}
	if p.Score != NormalCandyPoints || p.Candies != 1 {
		t.Fatalf("score=%d candies=%d after double collect", p.Score, p.Candies)
	}
}

func TestBonusCandyDoublesAndHeals(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Health = 2
	c := &Candy{Kind: CandyBonus, Points: BonusCandyPoints}

	c.Collect(p)
	if p.Score != BonusCandyPoints*2 {
		t.Fatalf("score = %d, want %d", p.Score, BonusCandyPoints*2)
	}
	if p.Health != 3 {
		t.Fatalf("health = %d, want 3", p.Health)
	}
}

func TestCursedCandyAttachesSpeedBoost(t *testing.T) {
	p := NewPlayer(0, 0)
	c := &Candy{Kind: CandyCursed, Points: CursedCandyPoints}

	c.Collect(p)
	if !p.Has(PowerSpeedBoost) {
		t.Fatal("cursed candy should attach the speed boost effect")
	}
}

func TestEasterEggInteraction(t *testing.T) {
	p := NewPlayer(0, 0)
	egg := NewEasterEgg(100, 0, EggStash, Reward{Name: "Extra candy stash", Points: 25})

	ok, msg := egg.Interact(p)
	if ok {
		t.Fatal("interaction should fail out of range")
	}
	if msg != "Get closer!" {
		t.Fatalf("message = %q", msg)
	}

	p.X = 90
	ok, _ = egg.Interact(p)
	if !ok {
		t.Fatal("interaction in range should succeed")
	}
	if p.Score != 25 {
		t.Fatalf("score = %d, want 25", p.Score)
	}
	if !egg.Visible || !egg.Activated {
		t.Fatal("egg should be visible and activated")
	}

	ok, msg = egg.Interact(p)
	if ok || msg != "Already found!" {
		t.Fatalf("repeat interaction: ok=%v msg=%q", ok, msg)
	}
}

func TestSecretEggStartsHidden(t *testing.T) {
	egg := NewEasterEgg(0, 0, EggSecret, PowerUpReward("Zombie power", PowerZombiePower, ZombiePowerDuration))
	if egg.Visible {
		t.Fatal("secret egg should start hidden")
	}
	p := NewPlayer(0, 0)
	egg.Interact(p)
	if !egg.Visible {
		t.Fatal("secret egg should become visible on activation")
	}
	if !p.Has(PowerZombiePower) {
		t.Fatal("reward power-up not applied")
	}
}
