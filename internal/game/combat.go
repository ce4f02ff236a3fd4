package game

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arenabrawl/internal/combat"
	"github.com/samdwyer/arenabrawl/internal/telemetry"
)

// attack activates an attack and, if it started, resolves its hits once
// against the enemies present at activation.
func attack(ctx context.Context, s *Session, resolver *combat.Resolver, kind string) (combat.Result, bool) {
	if !s.Attack(kind) {
		return combat.Result{}, false
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	snap := s.Snapshot()
	result := resolver.Resolve(kind, snap.PlayerPosition, snap.Enemies, s)

	span.SetAttributes(
		attribute.String("attack", kind),
		attribute.Int("hits", result.Hits),
		attribute.Int("damage", result.Damage),
		attribute.Int("combo", s.combo),
		attribute.Int("wave", snap.Wave),
	)
	return result, true
}

// step runs one simulation tick: due transitions first, then held movement,
// then the enemies.
func step(s *Session, brain *combat.Brain, held []Direction, dt time.Duration) {
	s.Advance(dt)
	if s.Mode() != ModePlaying {
		return
	}

	for _, dir := range held {
		s.MovePlayer(dir)
	}

	snap := s.Snapshot()
	brain.Update(dt, snap.PlayerPosition, snap.Enemies, s)
}
