// Package entity provides the arena's fighters: the player and the enemies.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arenabrawl/internal/gamedata"
)

// Enemy represents a hostile fighter in the arena.
type Enemy struct {
	ID        int                // Unique within a session, never reused
	Def       *gamedata.EnemyDef // Type stats (grunt, ninja, brute)
	Position  Vec3               // Arena position, Y is always 0
	Health    int                // Current health
	MaxHealth int                // Health at spawn
	IsHit     bool               // Hit-flash window after non-lethal damage
}

// NewEnemy creates a new enemy from a data-driven definition at full health.
func NewEnemy(id int, def *gamedata.EnemyDef, pos Vec3) *Enemy {
	pos.Y = 0
	return &Enemy{
		ID:        id,
		Def:       def,
		Position:  pos,
		Health:    def.HP,
		MaxHealth: def.HP,
	}
}

// Type returns the enemy's type identifier (e.g., "grunt").
func (e *Enemy) Type() string {
	if e.Def == nil {
		return "unknown"
	}
	return e.Def.ID
}

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// Speed returns movement speed in arena units per second.
func (e *Enemy) Speed() float64 {
	if e.Def != nil {
		return e.Def.Speed
	}
	return 1
}

// Attack returns the damage dealt per strike.
func (e *Enemy) Attack() int {
	if e.Def != nil {
		return e.Def.Attack
	}
	return 0
}

// Symbol returns the display glyph.
func (e *Enemy) Symbol() rune {
	if e.Def != nil {
		return e.Def.GlyphRune()
	}
	return '?'
}

// Color returns the tcell color for this enemy, white while hit-flashing.
func (e *Enemy) Color() tcell.Color {
	if e.IsHit {
		return tcell.ColorWhite
	}
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// HealthFraction returns Health/MaxHealth in [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}
