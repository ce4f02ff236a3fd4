// Package combat resolves player attacks against enemies and drives the
// enemies' approach-and-strike behaviour.
package combat

import (
	"github.com/samdwyer/arenabrawl/internal/entity"
	"github.com/samdwyer/arenabrawl/internal/gamedata"
)

// Striker receives the hits an attack lands.
type Striker interface {
	HitEnemy(id int, damage int)
}

// Result contains the outcome of resolving one attack activation.
type Result struct {
	Attack  string // Attack id, empty if the attack was unknown
	Hits    int    // Number of enemies struck
	Damage  int    // Total damage dealt
	Targets []int  // Ids of the struck enemies, in snapshot order
}

// Resolver applies player attacks to the enemies around the player.
type Resolver struct {
	attacks *gamedata.AttackRegistry
}

// NewResolver creates a resolver backed by the attack table.
func NewResolver(attacks *gamedata.AttackRegistry) *Resolver {
	return &Resolver{attacks: attacks}
}

// InRange reports whether target is strictly within reach of origin on the
// arena floor.
func InRange(origin, target entity.Vec3, reach float64) bool {
	return origin.PlanarDist(target) < reach
}

// Resolve strikes every live enemy within the attack's range once.
//
// enemies must be a copy of the enemy set taken at activation: the striker
// may remove enemies while the loop runs. Call it once per activation, never
// per frame.
func (r *Resolver) Resolve(kind string, origin entity.Vec3, enemies []entity.Enemy, striker Striker) Result {
	def := r.attacks.GetByID(kind)
	if def == nil {
		return Result{}
	}

	result := Result{Attack: def.ID}
	for i := range enemies {
		e := &enemies[i]
		if !e.IsAlive() || !InRange(origin, e.Position, def.Range) {
			continue
		}
		striker.HitEnemy(e.ID, def.Damage)
		result.Hits++
		result.Damage += def.Damage
		result.Targets = append(result.Targets, e.ID)
	}
	return result
}
