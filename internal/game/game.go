package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arenabrawl/internal/combat"
	"github.com/samdwyer/arenabrawl/internal/entity"
	"github.com/samdwyer/arenabrawl/internal/gamedata"
	"github.com/samdwyer/arenabrawl/internal/telemetry"
	"github.com/samdwyer/arenabrawl/internal/ui"
)

// Game wires the session to the terminal: input in, frames out.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	attacks  *gamedata.AttackRegistry
	resolver *combat.Resolver
	brain    *combat.Brain
	held     *heldKeys
	running  bool
	done     chan struct{}
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	enemyDefs, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemy data: %w", err)
	}
	attacks, err := gamedata.LoadAttackRegistry()
	if err != nil {
		return nil, fmt.Errorf("load attack data: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  NewSession(enemyDefs, attacks, cfg.NewRand()),
		attacks:  attacks,
		resolver: combat.NewResolver(attacks),
		brain:    combat.NewBrain(),
		held:     newHeldKeys(),
		running:  true,
		done:     make(chan struct{}),
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int64("config.seed", g.cfg.Seed),
		attribute.Int("config.tick_rate", g.cfg.TickRate),
		attribute.Int("attack_count", g.attacks.Count()),
	)
	initSpan.End()

	events := make(chan tcell.Event, 32)
	go g.pollEvents(events)

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	last := time.Now()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev, time.Now())

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			step(g.session, g.brain, g.held.Held(now), dt)
			g.render(dt)
		}
	}

	// Cleanup
	close(g.done)
	g.screen.Close()
	log.Printf("game closed (mode=%s)", g.session.Mode())
	return nil
}

// pollEvents forwards terminal events to the loop goroutine, which is the
// only one allowed to touch the session.
func (g *Game) pollEvents(events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-g.done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev, now)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyEnter:
		g.start(ctx)
		return
	}

	var ch rune
	if ev.Key() == tcell.KeyRune {
		ch = ev.Rune()
		switch ch {
		case 'q', 'Q':
			g.running = false
			return
		case ' ':
			g.start(ctx)
			return
		}
	}

	if g.session.Mode() != ModePlaying {
		return
	}

	if dir, ok := directionForKey(ev.Key(), ch); ok {
		g.held.Press(dir, now)
		return
	}

	if def := g.attacks.GetByKey(ch); def != nil {
		if result, ok := attack(ctx, g.session, g.resolver, def.ID); ok && result.Hits > 0 {
			log.Printf("%s hit %d enemies for %d", def.ID, result.Hits, result.Damage)
		}
	}
}

// start begins a new session from the title or results screen.
func (g *Game) start(ctx context.Context) {
	if g.session.Mode() == ModePlaying {
		return
	}
	g.session.Start(ctx)
	g.brain.Reset()
	g.held.Clear()
	g.renderer.ResetHealth(g.session.Snapshot().Health)
	log.Printf("session %s started", g.session.Snapshot().SessionID)
}

// render draws the frame for the current mode.
func (g *Game) render(dt time.Duration) {
	snap := g.session.Snapshot()
	hud := ui.HUD{
		Score:     snap.Score,
		Combo:     snap.Combo,
		MaxCombo:  snap.MaxCombo,
		Wave:      snap.Wave,
		Health:    snap.Health,
		MaxHealth: snap.MaxHealth,
	}

	switch snap.Mode {
	case ModeTitle:
		g.renderer.RenderTitle(g.attacks.All())
	case ModePlaying:
		player := entity.Player{
			Position:    snap.PlayerPosition,
			Health:      snap.Health,
			MaxHealth:   snap.MaxHealth,
			IsAttacking: snap.IsAttacking,
			AttackType:  snap.AttackType,
		}
		var reach float64
		if def := g.attacks.GetByID(snap.AttackType); def != nil {
			reach = def.Range
		}
		g.renderer.RenderArena(hud, player, snap.Enemies, reach, snap.ScreenShake, dt)
	case ModeGameOver:
		g.renderer.RenderGameOver(hud)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
