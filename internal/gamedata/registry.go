package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	if err := validateEnemies(enemies); err != nil {
		return nil, fmt.Errorf("enemies.json: %w", err)
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// AttackRegistry
// =============================================================================

// AttackRegistry holds loaded attack definitions and provides lookup utilities.
type AttackRegistry struct {
	attacks map[string]*AttackDef
	byKey   map[rune]*AttackDef
	all     []AttackDef
}

// NewAttackRegistry creates a registry from loaded attack definitions.
func NewAttackRegistry(attacks []AttackDef) *AttackRegistry {
	registry := &AttackRegistry{
		attacks: make(map[string]*AttackDef),
		byKey:   make(map[rune]*AttackDef),
		all:     attacks,
	}
	for i := range attacks {
		registry.attacks[attacks[i].ID] = &attacks[i]
		if key := attacks[i].KeyRune(); key != 0 {
			registry.byKey[key] = &attacks[i]
		}
	}
	return registry
}

// LoadAttackRegistry loads and creates a registry from the embedded attacks.json.
func LoadAttackRegistry() (*AttackRegistry, error) {
	attacks, err := LoadAttacks()
	if err != nil {
		return nil, err
	}
	if len(attacks) == 0 {
		return nil, errors.New("no attacks loaded from attacks.json")
	}
	if err := validateAttacks(attacks); err != nil {
		return nil, fmt.Errorf("attacks.json: %w", err)
	}
	return NewAttackRegistry(attacks), nil
}

// MustLoadAttackRegistry loads a registry, panicking on error.
func MustLoadAttackRegistry() *AttackRegistry {
	registry, err := LoadAttackRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the attack definition with the given ID, or nil if not found.
func (r *AttackRegistry) GetByID(id string) *AttackDef {
	return r.attacks[id]
}

// GetByKey returns the attack bound to the given key, or nil.
func (r *AttackRegistry) GetByKey(key rune) *AttackDef {
	return r.byKey[key]
}

// All returns all attack definitions.
func (r *AttackRegistry) All() []AttackDef {
	return r.all
}

// Count returns the number of attacks in the registry.
func (r *AttackRegistry) Count() int {
	return len(r.all)
}
