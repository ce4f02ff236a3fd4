package combat

import (
	"math"
	"testing"
	"time"

	"github.com/samdwyer/arenabrawl/internal/entity"
	"github.com/samdwyer/arenabrawl/internal/gamedata"
)

// mockSession records what combat asks the session to do.
type mockSession struct {
	hits      map[int]int
	moves     map[int]entity.Vec3
	playerHit []int
	onHit     func(id int)
}

func newMockSession() *mockSession {
	return &mockSession{
		hits:  make(map[int]int),
		moves: make(map[int]entity.Vec3),
	}
}

func (m *mockSession) HitEnemy(id int, damage int) {
	m.hits[id] += damage
	if m.onHit != nil {
		m.onHit(id)
	}
}

func (m *mockSession) MoveEnemy(id int, pos entity.Vec3) { m.moves[id] = pos }
func (m *mockSession) PlayerHit(damage int)              { m.playerHit = append(m.playerHit, damage) }

func enemyAt(t *testing.T, id int, typeID string, x, z float64) entity.Enemy {
	t.Helper()
	def := gamedata.MustLoadEnemyRegistry().GetByID(typeID)
	if def == nil {
		t.Fatalf("enemy type %q not found", typeID)
	}
	return *entity.NewEnemy(id, def, entity.Vec3{X: x, Z: z})
}

func TestInRangeIsStrict(t *testing.T) {
	origin := entity.Vec3{}
	if InRange(origin, entity.Vec3{X: 1.8}, 1.8) {
		t.Error("target exactly at reach should be out of range")
	}
	if !InRange(origin, entity.Vec3{X: 1.79}, 1.8) {
		t.Error("target just inside reach should be in range")
	}
}

func TestResolvePunchHitsOnlyNearby(t *testing.T) {
	resolver := NewResolver(gamedata.MustLoadAttackRegistry())
	session := newMockSession()

	enemies := []entity.Enemy{
		enemyAt(t, 0, "grunt", 1, 0),   // in range
		enemyAt(t, 1, "ninja", 0, 1.5), // in range
		enemyAt(t, 2, "brute", 2.5, 0), // out of punch range
	}

	result := resolver.Resolve(gamedata.AttackPunch, entity.Vec3{}, enemies, session)

	if result.Hits != 2 || result.Damage != 20 {
		t.Errorf("Resolve() hits=%d damage=%d, want 2/20", result.Hits, result.Damage)
	}
	if session.hits[0] != 10 || session.hits[1] != 10 {
		t.Errorf("hits = %v, want 10 on enemies 0 and 1", session.hits)
	}
	if _, ok := session.hits[2]; ok {
		t.Error("enemy out of range was hit")
	}
}

func TestResolveSpecialReachesFurther(t *testing.T) {
	resolver := NewResolver(gamedata.MustLoadAttackRegistry())
	session := newMockSession()

	enemies := []entity.Enemy{enemyAt(t, 4, "brute", 2.5, 0)}
	result := resolver.Resolve(gamedata.AttackSpecial, entity.Vec3{}, enemies, session)

	if result.Hits != 1 || session.hits[4] != 25 {
		t.Errorf("special: hits=%d damage on brute=%d, want 1/25", result.Hits, session.hits[4])
	}
}

func TestResolveKickDamage(t *testing.T) {
	resolver := NewResolver(gamedata.MustLoadAttackRegistry())
	session := newMockSession()

	enemies := []entity.Enemy{enemyAt(t, 1, "grunt", -1, -1)}
	resolver.Resolve(gamedata.AttackKick, entity.Vec3{}, enemies, session)

	if session.hits[1] != 15 {
		t.Errorf("kick damage = %d, want 15", session.hits[1])
	}
}

func TestResolveSurvivesRemovalDuringLoop(t *testing.T) {
	resolver := NewResolver(gamedata.MustLoadAttackRegistry())
	session := newMockSession()

	enemies := []entity.Enemy{
		enemyAt(t, 0, "ninja", 0.5, 0),
		enemyAt(t, 1, "ninja", -0.5, 0),
	}
	// The striker shrinks its own set; the snapshot must stay intact.
	live := append([]entity.Enemy(nil), enemies...)
	session.onHit = func(id int) { live = live[1:] }

	result := resolver.Resolve(gamedata.AttackPunch, entity.Vec3{}, enemies, session)
	if result.Hits != 2 {
		t.Errorf("Resolve() hits = %d, want 2", result.Hits)
	}
}

func TestResolveUnknownAttack(t *testing.T) {
	resolver := NewResolver(gamedata.MustLoadAttackRegistry())
	session := newMockSession()

	result := resolver.Resolve("headbutt", entity.Vec3{}, []entity.Enemy{enemyAt(t, 0, "grunt", 0, 0)}, session)
	if result.Hits != 0 || len(session.hits) != 0 {
		t.Errorf("unknown attack landed %d hits", result.Hits)
	}
}

func TestBrainApproachesPlayer(t *testing.T) {
	brain := NewBrain()
	session := newMockSession()

	enemies := []entity.Enemy{enemyAt(t, 0, "ninja", 5, 0)}
	strikes := brain.Update(time.Second, entity.Vec3{}, enemies, session)

	if strikes != 0 {
		t.Errorf("strikes = %d while approaching, want 0", strikes)
	}
	pos, ok := session.moves[0]
	if !ok {
		t.Fatal("enemy did not move")
	}
	// Ninja speed 2.5 over one second.
	if math.Abs(pos.X-2.5) > 1e-9 || pos.Z != 0 {
		t.Errorf("moved to %+v, want X=2.5", pos)
	}
	if len(session.playerHit) != 0 {
		t.Error("player hit from out of range")
	}
}

func TestBrainStrikesOnCooldown(t *testing.T) {
	brain := NewBrain()
	session := newMockSession()
	enemies := []entity.Enemy{enemyAt(t, 0, "grunt", 1, 0)}

	// Strikes on arrival.
	brain.Update(100*time.Millisecond, entity.Vec3{}, enemies, session)
	if len(session.playerHit) != 1 || session.playerHit[0] != 10 {
		t.Fatalf("playerHit = %v, want [10]", session.playerHit)
	}

	// Grunt cooldown is 1.5s: nothing for the next 1.4s.
	for i := 0; i < 14; i++ {
		brain.Update(100*time.Millisecond, entity.Vec3{}, enemies, session)
	}
	if len(session.playerHit) != 1 {
		t.Fatalf("struck %d times within cooldown, want 1", len(session.playerHit))
	}

	brain.Update(100*time.Millisecond, entity.Vec3{}, enemies, session)
	if len(session.playerHit) != 2 {
		t.Errorf("struck %d times after cooldown, want 2", len(session.playerHit))
	}
	if len(session.moves) != 0 {
		t.Error("enemy in range should not move")
	}
}

func TestBrainForgetsRemovedEnemies(t *testing.T) {
	brain := NewBrain()
	session := newMockSession()

	brain.Update(time.Millisecond, entity.Vec3{}, []entity.Enemy{
		enemyAt(t, 0, "grunt", 1, 0),
		enemyAt(t, 1, "brute", 0, 1),
	}, session)
	if brain.Tracked() != 2 {
		t.Fatalf("Tracked() = %d, want 2", brain.Tracked())
	}

	brain.Update(time.Millisecond, entity.Vec3{}, []entity.Enemy{enemyAt(t, 1, "brute", 0, 1)}, session)
	if brain.Tracked() != 1 {
		t.Errorf("Tracked() = %d after removal, want 1", brain.Tracked())
	}

	brain.Reset()
	if brain.Tracked() != 0 {
		t.Errorf("Tracked() = %d after Reset, want 0", brain.Tracked())
	}
}
