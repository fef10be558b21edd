package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/galactic-visuals/internal/effect"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61*time.Second + 900*time.Millisecond, "01:01"},
		{75 * time.Minute, "75:00"},
	}
	for _, c := range cases {
		if got := formatDuration(c.d); got != c.want {
			t.Errorf("formatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestRectFraction(t *testing.T) {
	r := rect{x: 20, y: 480, w: 200, h: 16}
	if !r.contains(20, 480) || !r.contains(220, 496) || r.contains(19, 490) {
		t.Fatal("unexpected hit testing")
	}
	if got := r.fraction(120); got != 0.5 {
		t.Fatalf("fraction(120) = %v, want 0.5", got)
	}
	if r.fraction(0) != 0 || r.fraction(500) != 1 {
		t.Fatal("fraction must clamp to [0, 1]")
	}
	if (rect{}).fraction(10) != 0 {
		t.Fatal("empty rect must report 0")
	}
}

func TestHostAction(t *testing.T) {
	cases := []struct {
		key     ebiten.Key
		focused bool
		want    action
	}{
		{ebiten.KeyEscape, false, actionQuit},
		{ebiten.KeyQ, false, actionQuit},
		{ebiten.KeySpace, false, actionPause},
		{ebiten.KeyTab, false, actionFocus},
		{ebiten.KeyTab, true, actionBlur},
		{ebiten.KeyEscape, true, actionBlur},
		{ebiten.KeyQ, true, actionNone},
		{ebiten.KeySpace, true, actionNone},
		{ebiten.KeyM, false, actionNone},
	}
	for _, c := range cases {
		if got := hostAction(c.key, c.focused); got != c.want {
			t.Errorf("hostAction(%v, %v) = %v, want %v", c.key, c.focused, got, c.want)
		}
	}
}

func TestEffectKeyForwardsUnmappedKeys(t *testing.T) {
	if got := effectKey(ebiten.KeyX); got != effect.KeyNone {
		t.Fatalf("unmapped key = %v, want KeyNone", got)
	}
	if got := effectKey(ebiten.KeyB); got != effect.KeyB {
		t.Fatalf("effectKey(B) = %v, want KeyB", got)
	}
}

func TestKeyMapCoversKonami(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyA, ebiten.KeyB} {
		if _, ok := keyMap[k]; !ok {
			t.Errorf("key %v is not forwarded to effects", k)
		}
	}
}
