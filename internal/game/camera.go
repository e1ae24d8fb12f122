package game

import "halloweenhaunt/internal/tilemap"

const cameraSmoothing = 0.1

// Camera follows the player with smoothed motion, clamped so the view never
// leaves the map.
type Camera struct {
	X, Y float64
}

func (c *Camera) Update(targetX, targetY float64, m *tilemap.Map) {
	tx := targetX - screenWidth/2
	ty := targetY - screenHeight/2

	maxX := float64(m.Width*m.TileSize - screenWidth)
	maxY := float64(m.Height*m.TileSize - screenHeight)
	tx = clamp(tx, 0, maxX)
	ty = clamp(ty, 0, maxY)

	c.X += (tx - c.X) * cameraSmoothing
	c.Y += (ty - c.Y) * cameraSmoothing
}

// Snap moves the camera directly to its clamped target, skipping smoothing.
func (c *Camera) Snap(targetX, targetY float64, m *tilemap.Map) {
	c.X = clamp(targetX-screenWidth/2, 0, float64(m.Width*m.TileSize-screenWidth))
	c.Y = clamp(targetY-screenHeight/2, 0, float64(m.Height*m.TileSize-screenHeight))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
