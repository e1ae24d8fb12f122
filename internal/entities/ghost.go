package entities

import (
	"math"

	"halloweenhaunt/internal/tilemap"
)

const (
	GhostSpeed           = 1.5
	GhostChaseSpeed      = 2.5
	GhostDetectionRadius = 100.0
	GhostRadius          = 10.0

	// Ticks a chase lasts before the ghost gives up (5s at 60 UPS).
	ghostChaseTicks = 300

	// Player escapes a chase beyond this multiple of the detection radius.
	ghostEscapeFactor = 1.5

	waypointArriveDist = 10.0
	homeArriveDist     = 20.0

	// Chase and return movement under the player's time-slow effect.
	timeSlowFactor = 0.4
)

type GhostState int

const (
	GhostPatrol GhostState = iota
	GhostChase
	GhostReturn
)

// Waypoint is one stop on a ghost's cyclic patrol route.
type Waypoint struct {
	X, Y float64
}

// Ghost patrols a waypoint route, chases the player on detection, and
// returns home when the chase expires.
type Ghost struct {
	X, Y         float64
	VX, VY       float64
	HomeX, HomeY float64

	State      GhostState
	Route      []Waypoint
	routeIndex int
	ChaseTimer int

	Radius float64
}

func NewGhost(x, y float64, route []Waypoint) *Ghost {
	if len(route) == 0 {
		route = []Waypoint{{X: x, Y: y}}
	}
	return &Ghost{
		X:      x,
		Y:      y,
		HomeX:  x,
		HomeY:  y,
		Route:  route,
		Radius: GhostRadius,
	}
}

// Update advances the AI one tick. The player is passed in per call; the
// ghost keeps no reference between ticks. Reports whether a chase started on
// this exact tick, so the caller can fire the chase cue once per transition.
func (g *Ghost) Update(p *Player, m *tilemap.Map) bool {
	distToPlayer := math.Hypot(g.X-p.X, g.Y-p.Y)

	startedChasing := false
	switch g.State {
	case GhostPatrol:
		if distToPlayer <= GhostDetectionRadius && !p.Has(PowerInvisibility) {
			g.State = GhostChase
			g.ChaseTimer = ghostChaseTicks
			startedChasing = true
		}
	case GhostChase:
		g.ChaseTimer--
		if g.ChaseTimer <= 0 || distToPlayer > GhostDetectionRadius*ghostEscapeFactor {
			g.State = GhostReturn
		}
	case GhostReturn:
		if math.Hypot(g.X-g.HomeX, g.Y-g.HomeY) < homeArriveDist {
			g.State = GhostPatrol
		}
	}

	switch g.State {
	case GhostChase:
		g.steerToward(p.X, p.Y, GhostChaseSpeed, p)
	case GhostReturn:
		g.steerToward(g.HomeX, g.HomeY, GhostSpeed, p)
	default:
		g.patrol(p)
	}

	// Axis-separated single-point collision against the same solidity rule
	// the player uses.
	ts := float64(m.TileSize)
	newX := g.X + g.VX
	if !m.IsSolid(int(math.Floor(newX/ts)), int(math.Floor(g.Y/ts))) {
		g.X = newX
	}
	newY := g.Y + g.VY
	if !m.IsSolid(int(math.Floor(g.X/ts)), int(math.Floor(newY/ts))) {
		g.Y = newY
	}

	return startedChasing
}

func (g *Ghost) steerToward(tx, ty, speed float64, p *Player) {
	dx := tx - g.X
	dy := ty - g.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		g.VX = 0
		g.VY = 0
		return
	}
	if p.Has(PowerTimeSlow) {
		speed *= timeSlowFactor
	}
	g.VX = dx / dist * speed
	g.VY = dy / dist * speed
}

func (g *Ghost) patrol(p *Player) {
	target := g.Route[g.routeIndex]
	if math.Hypot(target.X-g.X, target.Y-g.Y) < waypointArriveDist {
		g.routeIndex = (g.routeIndex + 1) % len(g.Route)
		target = g.Route[g.routeIndex]
	}
	g.steerToward(target.X, target.Y, GhostSpeed, p)
}
