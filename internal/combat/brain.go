package combat

import (
	"time"

	"github.com/samdwyer/arenabrawl/internal/entity"
)

// EngageRange is how close an enemy gets before it stops and strikes.
const EngageRange = 1.2

// Actor applies what the enemies decide to the session.
type Actor interface {
	MoveEnemy(id int, pos entity.Vec3)
	PlayerHit(damage int)
}

// Brain drives every enemy: walk toward the player, then strike on the
// enemy type's cooldown once in range. Each enemy's cooldown starts at zero,
// so an enemy strikes the moment it arrives.
type Brain struct {
	cooldowns map[int]time.Duration
}

// NewBrain creates a brain with no remembered enemies.
func NewBrain() *Brain {
	return &Brain{cooldowns: make(map[int]time.Duration)}
}

// Update advances every enemy by dt and returns the number of strikes made.
// enemies is a snapshot; enemies missing from it are forgotten.
func (b *Brain) Update(dt time.Duration, player entity.Vec3, enemies []entity.Enemy, actor Actor) int {
	seen := make(map[int]bool, len(enemies))
	strikes := 0

	for i := range enemies {
		e := &enemies[i]
		seen[e.ID] = true
		if !e.IsAlive() {
			continue
		}

		if e.Position.PlanarDist(player) > EngageRange {
			step := e.Speed() * dt.Seconds()
			actor.MoveEnemy(e.ID, e.Position.Toward(player, step))
			continue
		}

		cd := b.cooldowns[e.ID] - dt
		if cd <= 0 {
			actor.PlayerHit(e.Attack())
			strikes++
			if e.Def != nil {
				cd = e.Def.AttackCooldown()
			}
		}
		b.cooldowns[e.ID] = cd
	}

	for id := range b.cooldowns {
		if !seen[id] {
			delete(b.cooldowns, id)
		}
	}
	return strikes
}

// Reset forgets all enemies, e.g. when a new session starts.
func (b *Brain) Reset() {
	clear(b.cooldowns)
}

// Tracked returns how many enemies currently have a remembered cooldown.
func (b *Brain) Tracked() int {
	return len(b.cooldowns)
}
