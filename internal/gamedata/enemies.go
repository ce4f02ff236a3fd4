package gamedata

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "grunt")
	Name        string  `json:"name"`        // Display name (e.g., "Grunt")
	Glyph       string  `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string  `json:"color"`       // Hex color code (e.g., "#FF0066")
	HP          int     `json:"hp"`          // Max health at spawn
	Speed       float64 `json:"speed"`       // Arena units per second
	Attack      int     `json:"attack"`      // Damage dealt to the player per strike
	Cooldown    float64 `json:"cooldown"`    // Seconds between strikes
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// AttackCooldown returns the strike cooldown as a duration.
func (e *EnemyDef) AttackCooldown() time.Duration {
	return time.Duration(e.Cooldown * float64(time.Second))
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
