// Package world describes the arena: its bounds, random placement inside it
// and its projection onto the terminal grid.
package world

// Tile represents a single cell of the projected arena.
type Tile rune

const (
	// TileWall is the neon barrier around the arena.
	TileWall Tile = '#'
	// TileFloor is open floor.
	TileFloor Tile = '.'
	// TileGrid marks floor grid lines, drawn every arena unit.
	TileGrid Tile = '+'
)

// IsPassable returns true if a fighter can stand on the tile.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileGrid
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
