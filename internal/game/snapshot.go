package game

// Snapshot is a read-only view of the running game, for HUD overlays and
// tests. It copies scalars only.
type Snapshot struct {
	State   State
	Level   int
	Score   int
	Candies int
	Quota   int
	Health  int
	Night   bool
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State: g.state,
		Night: g.nightActive,
	}
	if g.levels != nil {
		s.Level = g.levels.Current
	}
	if g.lvl != nil {
		s.Quota = g.lvl.CandyQuota
	}
	if g.player != nil {
		s.Score = g.player.Score
		s.Candies = g.player.Candies
		s.Health = g.player.Health
	}
	return s
}
