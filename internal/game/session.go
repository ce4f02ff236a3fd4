package game

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/arenabrawl/internal/entity"
	"github.com/samdwyer/arenabrawl/internal/gamedata"
	"github.com/samdwyer/arenabrawl/internal/schedule"
	"github.com/samdwyer/arenabrawl/internal/telemetry"
	"github.com/samdwyer/arenabrawl/internal/world"
)

// Delayed transitions, one pending task per key.
const (
	keyStartSpawn   schedule.Key = "start-spawn"
	keyAttackWindow schedule.Key = "attack-window"
	keyComboDecay   schedule.Key = "combo-decay"
	keyShakeSettle  schedule.Key = "shake-settle"
	keyWaveRespawn  schedule.Key = "wave-respawn"
)

func hitFlashKey(id int) schedule.Key {
	return schedule.Key(fmt.Sprintf("enemy-%d-hitflash", id))
}

// Session owns all mutable state of one game: the player, the enemy set,
// scoring and the pending delayed transitions.
//
// Every command is a synchronous state transform that either applies or is a
// no-op under its guard. Delayed transitions only run inside Advance, on the
// caller's goroutine. A Session is not safe for concurrent use.
type Session struct {
	enemyDefs *gamedata.EnemyRegistry
	attacks   *gamedata.AttackRegistry
	rng       *rand.Rand
	timers    *schedule.Scheduler

	mode        Mode
	player      *entity.Player
	enemies     []*entity.Enemy
	score       int
	combo       int
	maxCombo    int
	wave        int
	screenShake float64
	nextEnemyID int

	sessionID string
	span      trace.Span
	spanOpen  bool
}

// NewSession creates a session on the title screen. rng drives enemy types
// and placement; seed it for reproducible waves.
func NewSession(enemyDefs *gamedata.EnemyRegistry, attacks *gamedata.AttackRegistry, rng *rand.Rand) *Session {
	return &Session{
		enemyDefs: enemyDefs,
		attacks:   attacks,
		rng:       rng,
		timers:    schedule.New(),
		mode:      ModeTitle,
		player:    entity.NewPlayer(PlayerMaxHealth),
		wave:      1,
		span:      trace.SpanFromContext(context.Background()),
	}
}

// mustInit panics when the session was not built by NewSession. Reaching
// state through a nil or zero Session is a wiring bug, not a game condition.
func (s *Session) mustInit() {
	if s == nil || s.player == nil || s.timers == nil {
		panic("game: Session used before NewSession")
	}
}

// Mode returns the current top-level mode.
func (s *Session) Mode() Mode {
	s.mustInit()
	return s.mode
}

// Start begins a fresh session from any mode. All state is reset, pending
// transitions are dropped and the first wave spawns after SpawnDelay.
func (s *Session) Start(ctx context.Context) {
	s.mustInit()
	if s.spanOpen {
		s.endSpan("restarted")
	}

	s.timers.Reset()
	s.mode = ModePlaying
	s.player = entity.NewPlayer(PlayerMaxHealth)
	s.enemies = nil
	s.score = 0
	s.combo = 0
	s.maxCombo = 0
	s.wave = 1
	s.screenShake = 0
	s.nextEnemyID = 0
	s.sessionID = uuid.NewString()

	_, s.span = telemetry.Tracer("session").Start(ctx, "session",
		trace.WithAttributes(attribute.String("session.id", s.sessionID)))
	s.spanOpen = true

	s.timers.After(keyStartSpawn, SpawnDelay, s.SpawnEnemies)
}

// SpawnEnemies replaces the enemy set with a fresh wave of
// min(3+wave, 8) enemies of weighted random type at random positions.
func (s *Session) SpawnEnemies() {
	s.mustInit()
	if s.mode != ModePlaying {
		return
	}

	count := EnemyCount(s.wave)
	enemies := make([]*entity.Enemy, 0, count)
	for i := 0; i < count; i++ {
		def := s.enemyDefs.SpawnRandom(s.rng)
		if def == nil {
			break
		}
		enemies = append(enemies, entity.NewEnemy(s.nextEnemyID, def, world.RandomPoint(s.rng)))
		s.nextEnemyID++
	}

	for _, e := range s.enemies {
		s.timers.Cancel(hitFlashKey(e.ID))
	}
	s.enemies = enemies

	s.span.AddEvent("wave.spawn", trace.WithAttributes(
		attribute.Int("wave", s.wave),
		attribute.Int("enemy_count", len(enemies)),
	))
}

// Attack starts the given attack if the player is free to act. It returns
// true when an attack was activated; the caller resolves its hits once.
// The attack window clears itself after the attack's duration.
func (s *Session) Attack(kind string) bool {
	s.mustInit()
	if s.mode != ModePlaying || s.player.IsAttacking {
		return false
	}
	def := s.attacks.GetByID(kind)
	if def == nil {
		return false
	}

	s.player.IsAttacking = true
	s.player.AttackType = def.ID
	s.timers.After(keyAttackWindow, def.Duration(), s.clearAttack)
	return true
}

func (s *Session) clearAttack() {
	s.player.IsAttacking = false
	s.player.AttackType = ""
}

// MovePlayer moves the player one step in the given direction, clamped to
// the arena. Call it once per tick for each held direction.
func (s *Session) MovePlayer(dir Direction) {
	s.mustInit()
	if s.mode != ModePlaying {
		return
	}

	pos := s.player.Position
	switch dir {
	case DirLeft:
		pos.X -= MoveStep
	case DirRight:
		pos.X += MoveStep
	case DirUp:
		pos.Z -= MoveStep
	case DirDown:
		pos.Z += MoveStep
	default:
		return
	}
	s.player.Position = world.Clamp(pos)
}

// HitEnemy deals damage to an enemy and scores the hit. Unknown ids are
// ignored. An enemy at or below zero health is removed at once; otherwise it
// flashes for HitFlash. Each hit extends the combo and restarts the combo
// decay window. Clearing the last enemy schedules the next wave.
func (s *Session) HitEnemy(id int, damage int) {
	s.mustInit()
	idx := s.enemyIndex(id)
	if idx < 0 {
		return
	}
	if damage < 0 {
		damage = 0
	}

	e := s.enemies[idx]
	e.Health -= damage
	if e.Health <= 0 {
		s.enemies = slices.Delete(s.enemies, idx, idx+1)
		s.timers.Cancel(hitFlashKey(id))
	} else {
		e.IsHit = true
		s.timers.After(hitFlashKey(id), HitFlash, func() { s.clearHitFlash(id) })
	}

	s.combo++
	s.score += Points(damage, s.combo)
	s.maxCombo = max(s.maxCombo, s.combo)
	s.screenShake = ShakeFor(s.combo)
	s.timers.Cancel(keyShakeSettle)
	s.timers.After(keyComboDecay, ComboWindow, s.decayCombo)

	if len(s.enemies) == 0 {
		s.span.AddEvent("wave.cleared", trace.WithAttributes(
			attribute.Int("wave", s.wave),
			attribute.Int("score", s.score),
		))
		s.timers.After(keyWaveRespawn, WavePause, s.nextWave)
	}
}

func (s *Session) clearHitFlash(id int) {
	if idx := s.enemyIndex(id); idx >= 0 {
		s.enemies[idx].IsHit = false
	}
}

func (s *Session) decayCombo() {
	s.combo = 0
	s.screenShake = 0
}

func (s *Session) nextWave() {
	if s.mode != ModePlaying {
		return
	}
	s.wave++
	s.SpawnEnemies()
}

// PlayerHit applies enemy damage to the player. Any hit breaks the combo;
// a hit that empties the health bar ends the session.
func (s *Session) PlayerHit(damage int) {
	s.mustInit()
	if s.mode != ModePlaying {
		return
	}

	lost := s.player.TakeDamage(damage)
	s.span.AddEvent("player.hit", trace.WithAttributes(
		attribute.Int("damage", lost),
		attribute.Int("health", s.player.Health),
	))

	if s.player.Health <= 0 {
		s.gameOver()
		return
	}

	s.combo = 0
	s.screenShake = ShakeOnPlayerHit
	s.timers.After(keyShakeSettle, ComboWindow, func() { s.screenShake = 0 })
}

// gameOver ends the session. The enemy set is emptied and every pending
// transition dropped: nothing but Start has an effect afterwards.
func (s *Session) gameOver() {
	s.mode = ModeGameOver
	s.player.Health = 0
	s.combo = 0
	s.screenShake = 0
	s.clearAttack()
	s.enemies = nil
	s.timers.Reset()
	s.endSpan("defeat")
}

// ResetCombo drops the combo counter to zero.
func (s *Session) ResetCombo() {
	s.mustInit()
	s.combo = 0
}

// MoveEnemy sets an enemy's position, clamped to the arena. It is the write
// path for enemy AI; unknown ids and non-playing modes are ignored.
func (s *Session) MoveEnemy(id int, pos entity.Vec3) {
	s.mustInit()
	if s.mode != ModePlaying {
		return
	}
	if idx := s.enemyIndex(id); idx >= 0 {
		s.enemies[idx].Position = world.Clamp(pos)
	}
}

// Advance moves the session clock forward and runs the delayed transitions
// that come due. It returns the number of transitions run.
func (s *Session) Advance(dt time.Duration) int {
	s.mustInit()
	return s.timers.Advance(dt)
}

func (s *Session) enemyIndex(id int) int {
	return slices.IndexFunc(s.enemies, func(e *entity.Enemy) bool { return e.ID == id })
}

func (s *Session) endSpan(outcome string) {
	s.span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("score", s.score),
		attribute.Int("max_combo", s.maxCombo),
		attribute.Int("wave", s.wave),
	)
	s.span.End()
	s.spanOpen = false
}
