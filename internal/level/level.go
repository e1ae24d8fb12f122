package level

import (
	"math"
	"math/rand"

	"halloweenhaunt/internal/entities"
	"halloweenhaunt/internal/tilemap"
)

const (
	MapWidth  = 30 // tiles
	MapHeight = 20 // tiles
	TileSize  = 32 // pixels

	// Candies required to open the way home, mirroring the default tuning.
	DefaultCandyQuota = 15

	maxGhostsPerLevel = 8

	// Player must be within this distance of the house door to finish.
	completionRadius = TileSize * 1.5
)

// Site marks a world position where a special feature lives.
type Site struct {
	X, Y float64
}

// Level owns one generated map and every entity placed on it. A level and
// its contents are built together and discarded together; a restart
// regenerates from scratch.
type Level struct {
	Number int
	Map    *tilemap.Map

	Candies []*entities.Candy
	Ghosts  []*entities.Ghost
	Eggs    []*entities.EasterEgg

	SpawnX, SpawnY float64
	HouseX, HouseY float64

	CandyQuota int
	Completed  bool

	// Difficulty flags derived from the level number.
	NightMode         bool
	HasChurchInterior bool
	HasCemeteryBoss   bool

	// Feature placements consumed by the features engine.
	PuzzleSites []Site
	DigSites    []Site
	TrapSites   []Site
}

// New generates a level for the given index. Content is randomized through
// rng; structure depends only on the index.
func New(number, candyQuota int, rng *rand.Rand) *Level {
	l := &Level{
		Number:            number,
		Map:               tilemap.New(MapWidth, MapHeight, TileSize),
		CandyQuota:        candyQuota,
		NightMode:         number >= 4,
		HasChurchInterior: number >= 3,
		HasCemeteryBoss:   number >= 5,
	}
	l.generateMap(rng)
	l.placeCandies(rng)
	l.placeGhosts(rng)
	l.placeEasterEggs(rng)
	l.placeFeatureSites(rng)
	return l
}

// GhostCount returns how many patrol ghosts a level of this index gets,
// before any boss or night spawns.
func GhostCount(number int) int {
	n := 3 + number
	if n > maxGhostsPerLevel {
		n = maxGhostsPerLevel
	}
	return n
}

// Update advances every ghost one tick and reports how many began chasing,
// so the caller can fire the chase cue.
func (l *Level) Update(p *entities.Player) int {
	started := 0
	for _, g := range l.Ghosts {
		if g.Update(p, l.Map) {
			started++
		}
	}
	return started
}

// CheckCompletion reports whether the candy quota is met and the player is
// home. Marks the level completed on the first success.
func (l *Level) CheckCompletion(px, py float64, candies int) bool {
	if candies < l.CandyQuota {
		return false
	}
	if math.Hypot(px-l.HouseX, py-l.HouseY) > completionRadius {
		return false
	}
	l.Completed = true
	return true
}

// RemainingCandies counts uncollected candies, for presentation.
func (l *Level) RemainingCandies() int {
	n := 0
	for _, c := range l.Candies {
		if !c.Collected {
			n++
		}
	}
	return n
}
