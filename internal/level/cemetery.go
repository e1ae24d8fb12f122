package level

import (
	"math"
	"math/rand"

	"halloweenhaunt/internal/entities"
	"halloweenhaunt/internal/tilemap"
)

// CemeteryArea is an independently generated sub-level entered through a
// cemetery gate. It has its own map, entities, boss and dig sites, and is
// discarded on exit.
type CemeteryArea struct {
	EntranceX, EntranceY float64

	Map     *tilemap.Map
	Candies []*entities.Candy
	Ghosts  []*entities.Ghost
	Eggs    []*entities.EasterEgg

	Boss     *entities.Ghost
	DigSites []Site

	Completed bool
}

func NewCemeteryArea(entranceX, entranceY float64, rng *rand.Rand) *CemeteryArea {
	c := &CemeteryArea{
		EntranceX: entranceX,
		EntranceY: entranceY,
		Map:       tilemap.New(MapWidth, MapHeight, TileSize),
	}
	c.generate(rng)
	c.placeEntities(rng)
	return c
}

func (c *CemeteryArea) generate(rng *rand.Rand) {
	// Walled border with the gate at the entrance tile.
	for x := 0; x < MapWidth; x++ {
		c.Map.Set(x, 0, tilemap.KindWall)
		c.Map.Set(x, MapHeight-1, tilemap.KindWall)
	}
	for y := 0; y < MapHeight; y++ {
		c.Map.Set(0, y, tilemap.KindWall)
		c.Map.Set(MapWidth-1, y, tilemap.KindWall)
	}
	c.Map.Set(int(c.EntranceX)/TileSize, int(c.EntranceY)/TileSize, tilemap.KindCemeteryGate)

	for i := 0; i < 25; i++ {
		x := 2 + rng.Intn(MapWidth-4)
		y := 2 + rng.Intn(MapHeight-4)
		if c.Map.Get(x, y) == tilemap.KindEmpty {
			c.Map.Set(x, y, tilemap.KindGrave)
		}
	}

	// Mausoleums.
	for i := 0; i < 3; i++ {
		x := 3 + rng.Intn(MapWidth-8)
		y := 3 + rng.Intn(MapHeight-8)
		if c.Map.Get(x, y) == tilemap.KindEmpty {
			c.createMausoleum(x, y, 3, 3)
		}
	}

	for i := 0; i < 8; i++ {
		x := 2 + rng.Intn(MapWidth-4)
		y := 2 + rng.Intn(MapHeight-4)
		if c.Map.Get(x, y) == tilemap.KindEmpty {
			c.Map.Set(x, y, tilemap.KindTree)
		}
	}
}

func (c *CemeteryArea) createMausoleum(x, y, width, height int) {
	for dx := 0; dx < width; dx++ {
		for dy := 0; dy < height; dy++ {
			if dx == 0 || dx == width-1 || dy == 0 || dy == height-1 {
				c.Map.Set(x+dx, y+dy, tilemap.KindWall)
			} else {
				c.Map.Set(x+dx, y+dy, tilemap.KindHouse)
			}
		}
	}
	c.Map.Set(x+width/2, y+height-1, tilemap.KindDoor)
}

func (c *CemeteryArea) placeEntities(rng *rand.Rand) {
	// Resident ghosts on tight square patrols.
	for i := 0; i < 6; i++ {
		for attempts := 0; attempts < eggAttempts; attempts++ {
			x, y := randTileCenter(rng, 2)
			if c.Map.IsSolid(int(x)/TileSize, int(y)/TileSize) {
				continue
			}
			c.Ghosts = append(c.Ghosts, entities.NewGhost(x, y, squareRoute(x, y, 64)))
			break
		}
	}

	// Boss in the center, larger and on a wider loop.
	bx := float64(MapWidth / 2 * TileSize)
	by := float64(MapHeight / 2 * TileSize)
	c.Boss = entities.NewGhost(bx, by, []entities.Waypoint{
		{X: bx, Y: by},
		{X: bx + 100, Y: by},
		{X: bx, Y: by + 100},
		{X: bx - 100, Y: by},
	})
	c.Boss.Radius = 12
	c.Ghosts = append(c.Ghosts, c.Boss)

	for i := 0; i < 5; i++ {
		for attempts := 0; attempts < trapAttempts; attempts++ {
			x, y := randTileCenter(rng, 3)
			if c.Map.IsSolid(int(x)/TileSize, int(y)/TileSize) {
				continue
			}
			c.DigSites = append(c.DigSites, Site{X: x, Y: y})
			break
		}
	}

	for i := 0; i < 8; i++ {
		for attempts := 0; attempts < eggAttempts; attempts++ {
			x, y := randTileCenter(rng, 2)
			if c.Map.IsSolid(int(x)/TileSize, int(y)/TileSize) {
				continue
			}
			c.Candies = append(c.Candies, &entities.Candy{
				X: x, Y: y,
				Kind:   entities.CandyBonus,
				Points: entities.BonusCandyPoints,
			})
			break
		}
	}

	for i := 0; i < 3; i++ {
		for attempts := 0; attempts < trapAttempts; attempts++ {
			x, y := randTileCenter(rng, 2)
			if c.Map.IsSolid(int(x)/TileSize, int(y)/TileSize) {
				continue
			}
			reward := entities.PowerUpReward("Ancient cemetery relic", entities.PowerZombiePower, entities.ZombiePowerDuration)
			reward.Points = 100
			c.Eggs = append(c.Eggs, entities.NewEasterEgg(x, y, entities.EggSecret, reward))
			break
		}
	}
}

func squareRoute(x, y, side float64) []entities.Waypoint {
	return []entities.Waypoint{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x, Y: y + side},
		{X: x - side, Y: y},
	}
}

// CheckExit reports whether the player stands close enough to the entrance
// gate to leave.
func (c *CemeteryArea) CheckExit(px, py float64) bool {
	return math.Hypot(px-c.EntranceX, py-c.EntranceY) < TileSize*1.5
}

// Update advances the resident ghosts one tick and reports how many began
// chasing.
func (c *CemeteryArea) Update(p *entities.Player) int {
	started := 0
	for _, g := range c.Ghosts {
		if g.Update(p, c.Map) {
			started++
		}
	}
	return started
}
