package ui

import (
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// gaugeEase is how long the displayed value takes to catch up with a change.
const gaugeEase = 300 * time.Millisecond

// Gauge eases a displayed value toward a target so bars slide instead of
// jumping when health changes.
type Gauge struct {
	target int
	shown  float32
	tween  *gween.Tween
}

// NewGauge creates a gauge already resting at value.
func NewGauge(value int) *Gauge {
	return &Gauge{target: value, shown: float32(value)}
}

// Set retargets the gauge. Setting the current target is a no-op so an
// in-flight tween keeps going.
func (g *Gauge) Set(value int) {
	if value == g.target {
		return
	}
	g.target = value
	g.tween = gween.New(g.shown, float32(value), float32(gaugeEase.Seconds()), ease.OutQuad)
}

// Snap jumps straight to value, e.g. when a new session starts.
func (g *Gauge) Snap(value int) {
	g.target = value
	g.shown = float32(value)
	g.tween = nil
}

// Update advances the easing by dt and returns the displayed value.
func (g *Gauge) Update(dt time.Duration) float32 {
	if g.tween == nil {
		return g.shown
	}
	current, done := g.tween.Update(float32(dt.Seconds()))
	g.shown = current
	if done {
		g.shown = float32(g.target)
		g.tween = nil
	}
	return g.shown
}

// Value returns the displayed value without advancing.
func (g *Gauge) Value() float32 {
	return g.shown
}

// Bar renders value/total as a fixed-width bar of full and empty cells.
func Bar(value float32, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 && value > 0 {
		filled = int(value/float32(total)*float32(width) + 0.5)
	}
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
