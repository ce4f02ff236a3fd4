package game

import "time"

// Session rules. Enemy and attack stats live in gamedata's JSON tables.
const (
	PlayerMaxHealth = 100
	MoveStep        = 0.3 // arena units per MovePlayer call

	BaseEnemies = 3 // enemies per wave = min(BaseEnemies+wave, MaxEnemies)
	MaxEnemies  = 8

	ComboTier      = 5   // every ComboTier hits adds ComboTierBonus to the multiplier
	ComboTierBonus = 0.5 // multiplier step per tier
	PointsPerHP    = 10

	ShakePerCombo    = 0.5
	MaxShake         = 3.0
	ShakeOnPlayerHit = 2.0

	SpawnDelay  = 500 * time.Millisecond
	HitFlash    = 100 * time.Millisecond
	ComboWindow = 2000 * time.Millisecond
	WavePause   = 1500 * time.Millisecond
)
