package world

import (
	"math"
	"math/rand"

	"github.com/samdwyer/arenabrawl/internal/entity"
)

const (
	// Arena floor bounds in world units.
	MinX = -7.0
	MaxX = 7.0
	MinZ = -3.0
	MaxZ = 3.0

	// Terminal cells per world unit.
	CellsPerUnitX = 4
	CellsPerUnitZ = 2
)

// Clamp returns p moved inside the arena bounds with Y on the floor.
func Clamp(p entity.Vec3) entity.Vec3 {
	return entity.Vec3{
		X: math.Max(MinX, math.Min(MaxX, p.X)),
		Y: 0,
		Z: math.Max(MinZ, math.Min(MaxZ, p.Z)),
	}
}

// Contains reports whether p lies within the arena bounds.
func Contains(p entity.Vec3) bool {
	return p.X >= MinX && p.X <= MaxX && p.Z >= MinZ && p.Z <= MaxZ
}

// RandomPoint returns a uniformly random floor position inside the arena.
func RandomPoint(rng *rand.Rand) entity.Vec3 {
	return entity.Vec3{
		X: MinX + rng.Float64()*(MaxX-MinX),
		Y: 0,
		Z: MinZ + rng.Float64()*(MaxZ-MinZ),
	}
}

// Grid is the arena projected onto terminal cells, walls included.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid builds the projected arena: one wall cell on each side around the
// floor, with grid marks on whole world units.
func NewGrid() *Grid {
	floorW := int((MaxX-MinX)*CellsPerUnitX) + 1
	floorH := int((MaxZ-MinZ)*CellsPerUnitZ) + 1
	width, height := floorW+2, floorH+2

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			switch {
			case x == 0 || y == 0 || x == width-1 || y == height-1:
				tiles[y][x] = TileWall
			case (x-1)%CellsPerUnitX == 0 && (y-1)%CellsPerUnitZ == 0:
				tiles[y][x] = TileGrid
			default:
				tiles[y][x] = TileFloor
			}
		}
	}

	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// GetTile returns the tile at the given cell, walls outside the grid.
func (g *Grid) GetTile(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return TileWall
	}
	return g.Tiles[y][x]
}

// Cell maps an arena position to its grid cell. Positions outside the arena
// are clamped first, so the result is always a floor cell.
func (g *Grid) Cell(p entity.Vec3) (int, int) {
	p = Clamp(p)
	x := 1 + int(math.Round((p.X-MinX)*CellsPerUnitX))
	y := 1 + int(math.Round((p.Z-MinZ)*CellsPerUnitZ))
	return x, y
}
