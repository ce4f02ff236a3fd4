package ui

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestGaugeEasesToTarget(t *testing.T) {
	g := NewGauge(100)
	g.Set(50)

	mid := g.Update(100 * time.Millisecond)
	if mid >= 100 || mid <= 50 {
		t.Errorf("value mid-ease = %v, want strictly between 50 and 100", mid)
	}

	end := g.Update(time.Second)
	if end != 50 {
		t.Errorf("value after ease = %v, want 50", end)
	}
	if g.Update(time.Second) != 50 {
		t.Error("finished gauge should rest at its target")
	}
}

func TestGaugeSameTargetKeepsTween(t *testing.T) {
	retargeted := NewGauge(100)
	retargeted.Set(0)
	retargeted.Update(100 * time.Millisecond)
	retargeted.Set(0)
	got := retargeted.Update(100 * time.Millisecond)

	straight := NewGauge(100)
	straight.Set(0)
	want := straight.Update(200 * time.Millisecond)

	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("re-setting the same target restarted the ease: got %v, want %v", got, want)
	}
}

func TestGaugeSnap(t *testing.T) {
	g := NewGauge(10)
	g.Set(90)
	g.Snap(100)

	if g.Value() != 100 || g.Update(time.Second) != 100 {
		t.Errorf("Snap(100) left value at %v", g.Value())
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		value  float32
		total  int
		width  int
		filled int
	}{
		{100, 100, 10, 10},
		{50, 100, 10, 5},
		{0, 100, 10, 0},
		{-5, 100, 10, 0},
		{150, 100, 10, 10},
		{10, 0, 10, 0},
	}

	for _, tt := range tests {
		bar := Bar(tt.value, tt.total, tt.width)
		if n := utf8.RuneCountInString(bar); n != tt.width {
			t.Errorf("Bar(%v,%d,%d) has %d cells, want %d", tt.value, tt.total, tt.width, n, tt.width)
		}
		filled := 0
		for _, r := range bar {
			if r == '█' {
				filled++
			}
		}
		if filled != tt.filled {
			t.Errorf("Bar(%v,%d,%d) filled = %d, want %d", tt.value, tt.total, tt.width, filled, tt.filled)
		}
	}

	if Bar(1, 1, 0) != "" {
		t.Error("zero-width bar should be empty")
	}
}

func TestHealthPip(t *testing.T) {
	if healthPip(1) != '█' {
		t.Errorf("full health pip = %c", healthPip(1))
	}
	if healthPip(0) != '▁' {
		t.Errorf("empty health pip = %c", healthPip(0))
	}
	if healthPip(0.5) != '▄' {
		t.Errorf("half health pip = %c", healthPip(0.5))
	}
}
