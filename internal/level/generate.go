package level

import (
	"math"
	"math/rand"

	"halloweenhaunt/internal/entities"
	"halloweenhaunt/internal/tilemap"
)

// Rejection-sampling attempt budgets per entity type. Exhausting a budget
// places fewer entities than requested; generation never fails outright.
const (
	candyAttempts = 1000
	ghostAttempts = 100
	eggAttempts   = 50
	trapAttempts  = 30
)

// generateMap lays out streets and structures. Each level re-runs the
// previous level's layout and adds to it; indexes beyond 5 reuse level 5.
func (l *Level) generateMap(rng *rand.Rand) {
	n := l.Number
	if n > 5 {
		n = 5
	}
	switch n {
	case 1:
		l.layoutLevel1(rng)
	case 2:
		l.layoutLevel2(rng)
	case 3:
		l.layoutLevel3(rng)
	case 4:
		l.layoutLevel4(rng)
	default:
		l.layoutLevel5(rng)
	}
}

// layoutLevel1 is the basic town: a crossroads, a few houses, a church and a
// small cemetery. It also fixes the spawn and the home door.
func (l *Level) layoutLevel1(rng *rand.Rand) {
	l.createHouse(2, MapHeight-5, 4, 3)
	l.SpawnX = 12 * TileSize
	l.SpawnY = (MapHeight - 6) * TileSize
	l.HouseX = 4 * TileSize
	l.HouseY = (MapHeight - 2) * TileSize

	// Main street, horizontal.
	for x := 1; x < MapWidth-1; x++ {
		l.Map.Set(x, MapHeight-7, tilemap.KindStreet)
		l.Map.Set(x, MapHeight-6, tilemap.KindStreet)
	}
	// Vertical street.
	for y := 5; y < MapHeight-2; y++ {
		l.Map.Set(10, y, tilemap.KindStreet)
		l.Map.Set(11, y, tilemap.KindStreet)
	}

	l.createHouse(15, MapHeight-5, 3, 2)
	l.createHouse(20, MapHeight-5, 3, 2)
	l.createChurch(25, 8, 4, 6)
	l.createCemetery(MapWidth-8, 2, 6, 6, rng)

	for i := 0; i < 8; i++ {
		x := rng.Intn(MapWidth)
		y := rng.Intn(MapHeight)
		if l.Map.Get(x, y) != tilemap.KindEmpty {
			continue
		}
		if rng.Float64() < 0.7 {
			l.Map.Set(x, y, tilemap.KindTree)
		} else {
			l.Map.Set(x, y, tilemap.KindTrashCan)
		}
	}
}

func (l *Level) layoutLevel2(rng *rand.Rand) {
	l.layoutLevel1(rng)

	// Alleys.
	for y := 2; y < MapHeight-8; y++ {
		l.Map.Set(7, y, tilemap.KindStreet)
	}
	for x := 12; x < 25; x++ {
		l.Map.Set(x, 12, tilemap.KindStreet)
	}

	l.createHouse(5, 8, 3, 3)
	l.createHouse(13, 5, 3, 3)

	for i := 0; i < 5; i++ {
		x := rng.Intn(MapWidth)
		y := rng.Intn(MapHeight)
		if l.Map.Get(x, y) == tilemap.KindEmpty {
			l.Map.Set(x, y, tilemap.KindTrashCan)
		}
	}
}

func (l *Level) layoutLevel3(rng *rand.Rand) {
	l.layoutLevel2(rng)

	// Larger church with interior access.
	l.createChurch(23, 6, 6, 8)
	l.Map.Set(25, 13, tilemap.KindChurchDoor)

	// Extended cemetery with a gate.
	l.createCemetery(MapWidth-10, 1, 8, 8, rng)
	l.Map.Set(MapWidth-6, 8, tilemap.KindCemeteryGate)
}

func (l *Level) layoutLevel4(rng *rand.Rand) {
	l.layoutLevel3(rng)

	// Diagonal street.
	for i := 0; i < 8; i++ {
		l.Map.Set(3+i, 3+i, tilemap.KindStreet)
	}

	l.createHouse(1, 1, 4, 4)
	l.createHouse(MapWidth-6, MapHeight-6, 4, 4)
}

func (l *Level) layoutLevel5(rng *rand.Rand) {
	l.layoutLevel4(rng)

	// Open boss arena in the cemetery corner, sparse graves at its fringe.
	for x := MapWidth - 12; x < MapWidth; x++ {
		for y := 0; y < 10; y++ {
			if x < MapWidth-2 && y < 8 {
				l.Map.Set(x, y, tilemap.KindEmpty)
			} else if l.Map.Get(x, y) == tilemap.KindEmpty && rng.Float64() < 0.3 {
				l.Map.Set(x, y, tilemap.KindGrave)
			}
		}
	}
	for x := MapWidth - 12; x < MapWidth; x++ {
		l.Map.Set(x, 0, tilemap.KindWall)
		if x < MapWidth-1 {
			l.Map.Set(x, 9, tilemap.KindWall)
		}
	}
	for y := 0; y < 10; y++ {
		l.Map.Set(MapWidth-12, y, tilemap.KindWall)
		l.Map.Set(MapWidth-1, y, tilemap.KindWall)
	}
}

// createHouse writes a wall-bordered rectangle with house interior and a
// door on the bottom wall, overwriting whatever was there.
func (l *Level) createHouse(x, y, width, height int) {
	l.createStructure(x, y, width, height, tilemap.KindHouse, tilemap.KindDoor)
}

func (l *Level) createChurch(x, y, width, height int) {
	l.createStructure(x, y, width, height, tilemap.KindChurch, tilemap.KindChurchDoor)
}

func (l *Level) createStructure(x, y, width, height int, interior, door tilemap.Kind) {
	for dx := 0; dx < width; dx++ {
		for dy := 0; dy < height; dy++ {
			if dx == 0 || dx == width-1 || dy == 0 || dy == height-1 {
				l.Map.Set(x+dx, y+dy, tilemap.KindWall)
			} else {
				l.Map.Set(x+dx, y+dy, interior)
			}
		}
	}
	l.Map.Set(x+width/2, y+height-1, door)
}

// createCemetery fences a rectangle, scatters graves inside and opens a
// gate on the bottom wall.
func (l *Level) createCemetery(x, y, width, height int, rng *rand.Rand) {
	for dx := 0; dx < width; dx++ {
		for dy := 0; dy < height; dy++ {
			if dx == 0 || dx == width-1 || dy == 0 || dy == height-1 {
				l.Map.Set(x+dx, y+dy, tilemap.KindWall)
			}
		}
	}
	for dx := 1; dx < width-1; dx++ {
		for dy := 1; dy < height-1; dy++ {
			if rng.Float64() < 0.4 {
				l.Map.Set(x+dx, y+dy, tilemap.KindGrave)
			}
		}
	}
	l.Map.Set(x+width/2, y+height-1, tilemap.KindCemeteryGate)
}

// randTileCenter picks a uniformly random in-bounds tile within the given
// margin and returns its pixel center.
func randTileCenter(rng *rand.Rand, margin int) (float64, float64) {
	tx := margin + rng.Intn(MapWidth-2*margin)
	ty := margin + rng.Intn(MapHeight-2*margin)
	return float64(tx*TileSize + TileSize/2), float64(ty*TileSize + TileSize/2)
}

func (l *Level) placeCandies(rng *rand.Rand) {
	want := l.CandyQuota + 5
	placed := 0
	for attempts := 0; placed < want && attempts < candyAttempts; attempts++ {
		x, y := randTileCenter(rng, 1)
		tx, ty := int(x)/TileSize, int(y)/TileSize
		if l.Map.IsSolid(tx, ty) {
			continue
		}
		if math.Abs(x-l.SpawnX) <= TileSize*2 || math.Abs(y-l.SpawnY) <= TileSize*2 {
			continue
		}

		kind := entities.CandyNormal
		points := entities.NormalCandyPoints
		if l.Number >= 3 && rng.Float64() < 0.1 {
			kind = entities.CandyCursed
			points = entities.CursedCandyPoints
		} else if rng.Float64() < 0.15 {
			kind = entities.CandyBonus
			points = entities.BonusCandyPoints
		}
		l.Candies = append(l.Candies, &entities.Candy{X: x, Y: y, Kind: kind, Points: points})
		placed++
	}
}

func (l *Level) placeGhosts(rng *rand.Rand) {
	for i := 0; i < GhostCount(l.Number); i++ {
		for attempts := 0; attempts < ghostAttempts; attempts++ {
			x, y := randTileCenter(rng, 2)
			tx, ty := int(x)/TileSize, int(y)/TileSize
			if l.Map.IsSolid(tx, ty) {
				continue
			}
			if math.Hypot(x-l.SpawnX, y-l.SpawnY) <= TileSize*5 {
				continue
			}
			route := l.patrolRoute(rng, x, y)
			l.Ghosts = append(l.Ghosts, entities.NewGhost(x, y, route))
			break
		}
	}

	if l.HasCemeteryBoss {
		bx := float64((MapWidth - 6) * TileSize)
		by := float64(4 * TileSize)
		boss := entities.NewGhost(bx, by, []entities.Waypoint{
			{X: bx, Y: by},
			{X: bx - TileSize*2, Y: by},
			{X: bx - TileSize*2, Y: by + TileSize*2},
			{X: bx, Y: by + TileSize*2},
		})
		boss.Radius = 12
		l.Ghosts = append(l.Ghosts, boss)
	}
}

// patrolRoute builds a short loop of nearby walkable points around a spawn.
func (l *Level) patrolRoute(rng *rand.Rand, startX, startY float64) []entities.Waypoint {
	route := []entities.Waypoint{{X: startX, Y: startY}}
	numPoints := 2 + rng.Intn(3)
	for i := 0; i < numPoints; i++ {
		for attempts := 0; attempts < 10; attempts++ {
			nx := startX + float64((rng.Intn(7)-3)*TileSize)
			ny := startY + float64((rng.Intn(7)-3)*TileSize)
			if !l.Map.IsSolid(int(nx)/TileSize, int(ny)/TileSize) {
				route = append(route, entities.Waypoint{X: nx, Y: ny})
				break
			}
		}
	}
	return route
}

func (l *Level) placeEasterEggs(rng *rand.Rand) {
	count := 5 + l.Number
	for i := 0; i < count; i++ {
		for attempts := 0; attempts < eggAttempts; attempts++ {
			x, y := randTileCenter(rng, 1)
			if l.Map.IsSolid(int(x)/TileSize, int(y)/TileSize) {
				continue
			}
			kind, reward := l.rollEgg(rng)
			if rng.Float64() < 0.3 {
				kind = entities.EggSecret
			}
			l.Eggs = append(l.Eggs, entities.NewEasterEgg(x, y, kind, reward))
			break
		}
	}
}

func (l *Level) rollEgg(rng *rand.Rand) (entities.EggKind, entities.Reward) {
	kinds := []entities.EggKind{entities.EggStash, entities.EggBonus, entities.EggPowerUp}
	if l.Number >= 3 {
		kinds = append(kinds, entities.EggPuzzle, entities.EggDig)
	}
	kind := kinds[rng.Intn(len(kinds))]

	switch kind {
	case entities.EggStash:
		return kind, entities.Reward{Name: "Extra candy stash", Points: 25}
	case entities.EggBonus:
		return kind, entities.Reward{Name: "Health boost", Heal: 1}
	case entities.EggPowerUp:
		return kind, rollPowerUpReward(rng)
	default:
		return kind, entities.Reward{Name: "Mystery bonus"}
	}
}

func rollPowerUpReward(rng *rand.Rand) entities.Reward {
	options := []entities.Reward{
		entities.PowerUpReward("Candy magnet", entities.PowerCandyMagnet, entities.CandyMagnetDuration),
		entities.PowerUpReward("Ghost repel", entities.PowerGhostRepel, entities.GhostRepelDuration),
		entities.PowerUpReward("Speed boost", entities.PowerSpeedBoost, 420),
		entities.PowerUpReward("Invisibility", entities.PowerInvisibility, entities.InvisibilityDuration),
		entities.PowerUpReward("Time slow", entities.PowerTimeSlow, entities.TimeSlowDuration),
		entities.PowerUpReward("Double points", entities.PowerDoublePoints, entities.DoublePointsDuration),
		entities.PowerUpReward("Shield", entities.PowerShield, entities.ShieldDuration),
	}
	return options[rng.Intn(len(options))]
}

// placeFeatureSites records puzzle, dig and trap positions for the features
// engine, gated by level index.
func (l *Level) placeFeatureSites(rng *rand.Rand) {
	if l.Number >= 3 {
		l.PuzzleSites = append(l.PuzzleSites, Site{
			X: 25*TileSize + TileSize/2,
			Y: 10*TileSize + TileSize/2,
		})
	}

	if l.Number >= 2 {
		for i := 0; i < 2; i++ {
			l.DigSites = append(l.DigSites, Site{
				X: float64((MapWidth-6+i*2)*TileSize + TileSize/2),
				Y: float64((3+i)*TileSize + TileSize/2),
			})
		}
	}

	if l.Number >= 4 {
		count := 2 + l.Number/2
		for i := 0; i < count; i++ {
			for attempts := 0; attempts < trapAttempts; attempts++ {
				x, y := randTileCenter(rng, 5)
				if l.Map.IsSolid(int(x)/TileSize, int(y)/TileSize) {
					continue
				}
				if math.Abs(x-l.SpawnX) <= TileSize*3 || math.Abs(y-l.SpawnY) <= TileSize*3 {
					continue
				}
				l.TrapSites = append(l.TrapSites, Site{X: x, Y: y})
				break
			}
		}
	}
}
