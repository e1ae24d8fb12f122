package tilemap

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindStreet
	KindHouse
	KindWall
	KindChurch
	KindGrave
	KindTree
	KindDoor
	KindChurchDoor
	KindCemeteryGate
	KindTrashCan
)

// Map is a fixed-size grid of tile kinds. Out-of-bounds reads resolve to
// KindWall so callers never need their own bounds checks.
type Map struct {
	Width    int
	Height   int
	TileSize int
	tiles    [][]Kind
}

func New(width, height, tileSize int) *Map {
	tiles := make([][]Kind, height)
	for y := range tiles {
		tiles[y] = make([]Kind, width)
	}
	return &Map{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		tiles:    tiles,
	}
}

func (m *Map) Get(x, y int) Kind {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return KindWall
	}
	return m.tiles[y][x]
}

// Set writes a tile kind. Writes outside the grid are silently dropped.
func (m *Map) Set(x, y int, k Kind) {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return
	}
	m.tiles[y][x] = k
}

func (m *Map) IsSolid(x, y int) bool {
	switch m.Get(x, y) {
	case KindWall, KindHouse, KindChurch, KindGrave, KindTree, KindTrashCan:
		return true
	}
	return false
}

func (m *Map) IsDoor(x, y int) bool {
	switch m.Get(x, y) {
	case KindDoor, KindChurchDoor, KindCemeteryGate:
		return true
	}
	return false
}

// kindColors are flat fallback colors per tile kind; the game stays playable
// without sprite assets.
var kindColors = map[Kind]color.RGBA{
	KindEmpty:        {R: 0, G: 80, B: 0, A: 255},
	KindStreet:       {R: 40, G: 40, B: 40, A: 255},
	KindHouse:        {R: 80, G: 50, B: 30, A: 255},
	KindWall:         {R: 100, G: 100, B: 100, A: 255},
	KindChurch:       {R: 60, G: 60, B: 80, A: 255},
	KindGrave:        {R: 120, G: 120, B: 120, A: 255},
	KindTree:         {R: 30, G: 60, B: 20, A: 255},
	KindDoor:         {R: 100, G: 60, B: 30, A: 255},
	KindChurchDoor:   {R: 60, G: 40, B: 80, A: 255},
	KindCemeteryGate: {R: 20, G: 20, B: 20, A: 255},
	KindTrashCan:     {R: 140, G: 140, B: 140, A: 255},
}

// Draw renders the portion of the map visible through the camera offset.
func (m *Map) Draw(dst *ebiten.Image, camX, camY float64) {
	ts := m.TileSize
	startX := int(camX) / ts
	startY := int(camY) / ts
	endX := startX + dst.Bounds().Dx()/ts + 2
	endY := startY + dst.Bounds().Dy()/ts + 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}
	if endX > m.Width {
		endX = m.Width
	}
	if endY > m.Height {
		endY = m.Height
	}

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			c := kindColors[m.tiles[y][x]]
			px := float32(float64(x*ts) - camX)
			py := float32(float64(y*ts) - camY)
			vector.DrawFilledRect(dst, px, py, float32(ts), float32(ts), c, false)
		}
	}
}
