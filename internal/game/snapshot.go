package game

import "github.com/samdwyer/arenabrawl/internal/entity"

// Snapshot is a read-only copy of a session's state for one frame.
type Snapshot struct {
	SessionID      string
	Mode           Mode
	Score          int
	Combo          int
	MaxCombo       int
	Wave           int
	Health         int
	MaxHealth      int
	PlayerPosition entity.Vec3
	IsAttacking    bool
	AttackType     string
	ScreenShake    float64
	Enemies        []entity.Enemy
}

// Snapshot copies the current state. Mutating the result does not affect
// the session.
func (s *Session) Snapshot() Snapshot {
	s.mustInit()

	enemies := make([]entity.Enemy, len(s.enemies))
	for i, e := range s.enemies {
		enemies[i] = *e
	}

	return Snapshot{
		SessionID:      s.sessionID,
		Mode:           s.mode,
		Score:          s.score,
		Combo:          s.combo,
		MaxCombo:       s.maxCombo,
		Wave:           s.wave,
		Health:         s.player.Health,
		MaxHealth:      s.player.MaxHealth,
		PlayerPosition: s.player.Position,
		IsAttacking:    s.player.IsAttacking,
		AttackType:     s.player.AttackType,
		ScreenShake:    s.screenShake,
		Enemies:        enemies,
	}
}

// Enemy returns a copy of the enemy with the given id.
func (snap Snapshot) Enemy(id int) (entity.Enemy, bool) {
	for _, e := range snap.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Enemy{}, false
}
