package game

import "math"

// ComboMultiplier returns the score multiplier for a combo count:
// 1 + floor(combo/5)*0.5.
func ComboMultiplier(combo int) float64 {
	if combo < 0 {
		combo = 0
	}
	return 1 + float64(combo/ComboTier)*ComboTierBonus
}

// Points returns the score awarded for damage dealt at the given combo,
// floor(damage*10*multiplier).
func Points(damage, combo int) int {
	return int(math.Floor(float64(damage) * PointsPerHP * ComboMultiplier(combo)))
}

// EnemyCount returns the number of enemies spawned for a wave.
func EnemyCount(wave int) int {
	return min(BaseEnemies+wave, MaxEnemies)
}

// ShakeFor returns the screen-shake magnitude for a combo count.
func ShakeFor(combo int) float64 {
	return math.Min(float64(combo)*ShakePerCombo, MaxShake)
}
