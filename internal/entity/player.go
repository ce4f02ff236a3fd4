package entity

// Player is the fighter controlled from the keyboard.
type Player struct {
	Position    Vec3
	Health      int
	MaxHealth   int
	IsAttacking bool
	AttackType  string // "" when idle, otherwise an attack id
}

// NewPlayer creates a player at the arena center with full health.
func NewPlayer(maxHealth int) *Player {
	return &Player{
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage reduces health, clamped to [0, MaxHealth], and returns the
// health actually lost.
func (p *Player) TakeDamage(amount int) int {
	before := p.Health
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return before - p.Health
}
