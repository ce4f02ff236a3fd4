package ui

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arenabrawl/internal/entity"
	"github.com/samdwyer/arenabrawl/internal/gamedata"
	"github.com/samdwyer/arenabrawl/internal/world"
)

const (
	hudRows      = 3 // rows above the arena
	arenaLeft    = 2
	healthBarLen = 30
	ringSamples  = 48
)

var (
	playerColor = gamedata.MustParseHexColor("#00FFF0")
	accentColor = gamedata.MustParseHexColor("#FF0066")
	comboColor  = gamedata.MustParseHexColor("#39FF14")
	wallColor   = gamedata.MustParseHexColor("#0D6F7D")
	floorColor  = gamedata.MustParseHexColor("#1A3A4A")
)

// HUD holds the numbers shown above the arena and on the results screen.
type HUD struct {
	Score     int
	Combo     int
	MaxCombo  int
	Wave      int
	Health    int
	MaxHealth int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	grid   *world.Grid
	rng    *rand.Rand // shake jitter only
	health *Gauge
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		grid:   world.NewGrid(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		health: NewGauge(0),
	}
}

// ResetHealth snaps the health bar to value without easing.
func (r *Renderer) ResetHealth(value int) {
	r.health.Snap(value)
}

// RenderTitle draws the title screen.
func (r *Renderer) RenderTitle(attacks []gamedata.AttackDef) {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(accentColor).Bold(true)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	r.drawCentered(2, "N E O N   B R A W L", title)
	r.drawCentered(4, "Press ENTER to fight", text)
	r.drawCentered(6, "Move: arrows / WASD", dim)
	for i, a := range attacks {
		r.drawCentered(7+i, fmt.Sprintf("%s: %s", a.Key, a.Name), dim)
	}
	r.drawCentered(8+len(attacks), "Quit: q / Esc", dim)

	r.screen.Show()
}

// RenderArena draws one frame of combat: HUD, arena, enemies and player.
func (r *Renderer) RenderArena(hud HUD, player entity.Player, enemies []entity.Enemy, attackRange, shake float64, dt time.Duration) {
	r.screen.Clear()

	r.health.Set(hud.Health)
	r.drawHUD(hud, r.health.Update(dt))

	ox, oy := arenaLeft, hudRows
	if shake > 0 {
		ox += int(math.Round((r.rng.Float64() - 0.5) * shake))
		oy += int(math.Round((r.rng.Float64() - 0.5) * shake * 0.5))
	}

	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			tile := r.grid.GetTile(x, y)
			r.screen.SetContent(ox+x, oy+y, tile.Rune(), r.getTileStyle(tile))
		}
	}

	if player.IsAttacking && attackRange > 0 {
		r.drawRing(ox, oy, player.Position, attackRange, player.AttackType == gamedata.AttackSpecial)
	}

	for i := range enemies {
		e := &enemies[i]
		x, y := r.grid.Cell(e.Position)
		style := tcell.StyleDefault.Foreground(e.Color())
		if e.IsHit {
			style = style.Bold(true)
		}
		r.screen.SetContent(ox+x, oy+y, e.Symbol(), style)
		if y > 1 {
			r.screen.SetContent(ox+x, oy+y-1, healthPip(e.HealthFraction()), tcell.StyleDefault.Foreground(e.Color()))
		}
	}

	px, py := r.grid.Cell(player.Position)
	playerStyle := tcell.StyleDefault.Foreground(playerColor).Bold(true)
	if player.IsAttacking {
		playerStyle = playerStyle.Reverse(true)
	}
	r.screen.SetContent(ox+px, oy+py, '@', playerStyle)

	r.screen.Show()
}

// RenderGameOver draws the results screen.
func (r *Renderer) RenderGameOver(hud HUD) {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(accentColor).Bold(true)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.drawCentered(2, "G A M E   O V E R", title)
	r.drawCentered(4, fmt.Sprintf("Score      %d", hud.Score), text)
	r.drawCentered(5, fmt.Sprintf("Max combo  %d", hud.MaxCombo), text)
	r.drawCentered(6, fmt.Sprintf("Wave       %d", hud.Wave), text)
	r.drawCentered(8, "Press ENTER to play again", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

func (r *Renderer) drawHUD(hud HUD, shownHealth float32) {
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(arenaLeft, 0, fmt.Sprintf("SCORE %08d", hud.Score), text.Bold(true))
	r.screen.DrawText(arenaLeft+16, 0, fmt.Sprintf("WAVE %d", hud.Wave), text)
	if hud.Combo > 1 {
		r.screen.DrawText(arenaLeft+26, 0, fmt.Sprintf("%d HIT COMBO", hud.Combo),
			tcell.StyleDefault.Foreground(comboColor).Bold(true))
	}
	r.screen.DrawText(arenaLeft+44, 0, fmt.Sprintf("BEST %d", hud.MaxCombo), text)

	r.screen.DrawText(arenaLeft, 1, "HP ", text)
	r.screen.DrawText(arenaLeft+3, 1, Bar(shownHealth, hud.MaxHealth, healthBarLen),
		tcell.StyleDefault.Foreground(accentColor))
	r.screen.DrawText(arenaLeft+4+healthBarLen, 1, fmt.Sprintf("%3d/%d", hud.Health, hud.MaxHealth), text)
}

// drawRing marks the attack's reach around the player on floor cells.
func (r *Renderer) drawRing(ox, oy int, center entity.Vec3, radius float64, special bool) {
	ch := '·'
	style := tcell.StyleDefault.Foreground(playerColor)
	if special {
		ch = '*'
		style = style.Bold(true)
	}
	for i := 0; i < ringSamples; i++ {
		a := 2 * math.Pi * float64(i) / ringSamples
		p := entity.Vec3{X: center.X + radius*math.Cos(a), Z: center.Z + radius*math.Sin(a)}
		if !world.Contains(p) {
			continue
		}
		x, y := r.grid.Cell(p)
		r.screen.SetContent(ox+x, oy+y, ch, style)
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.screen.DrawText(x, y, text, style)
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(wallColor).Bold(true)
	case world.TileFloor, world.TileGrid:
		return tcell.StyleDefault.Foreground(floorColor)
	default:
		return tcell.StyleDefault
	}
}

// healthPip picks a block glyph whose height tracks the remaining health.
func healthPip(fraction float64) rune {
	pips := []rune("▁▂▃▄▅▆▇█")
	i := int(math.Ceil(fraction*float64(len(pips)))) - 1
	return pips[min(max(i, 0), len(pips)-1)]
}
