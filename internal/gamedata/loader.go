package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// validateEnemies rejects definitions the simulation cannot use.
func validateEnemies(enemies []EnemyDef) error {
	seen := make(map[string]bool, len(enemies))
	for _, e := range enemies {
		if e.ID == "" {
			return fmt.Errorf("enemy %q has no id", e.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate enemy id %q", e.ID)
		}
		seen[e.ID] = true
		if e.HP <= 0 {
			return fmt.Errorf("enemy %s: hp must be positive, got %d", e.ID, e.HP)
		}
		if e.SpawnWeight < 0 {
			return fmt.Errorf("enemy %s: negative spawn weight %d", e.ID, e.SpawnWeight)
		}
	}
	return nil
}

// validateAttacks rejects attacks without a window or reach.
func validateAttacks(attacks []AttackDef) error {
	for _, a := range attacks {
		if a.ID == "" {
			return fmt.Errorf("attack %q has no id", a.Name)
		}
		if a.DurationMs <= 0 {
			return fmt.Errorf("attack %s: durationMs must be positive, got %d", a.ID, a.DurationMs)
		}
		if a.Range <= 0 {
			return fmt.Errorf("attack %s: range must be positive, got %v", a.ID, a.Range)
		}
	}
	return nil
}
