package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	b := g.button
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Open File"
	textWidth := len(text) * 6
	ebitenutil.DebugPrintAt(screen, text, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	duration := g.player.Duration()
	if !g.player.Loaded() || duration == 0 {
		return
	}
	bar := g.bar
	progress := clamp01(float64(g.position) / float64(duration))

	vector.DrawFilledRect(screen, float32(bar.x), float32(bar.y), float32(bar.w), float32(bar.h), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.StrokeRect(screen, float32(bar.x), float32(bar.y), float32(bar.w), float32(bar.h), 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	if progress > 0 {
		fill := surface.Hue((g.colorPhase+progress*0.5)*360, 0.8, 0.9)
		fill.A = 180
		vector.DrawFilledRect(screen, float32(bar.x), float32(bar.y), float32(progress*float64(bar.w)), float32(bar.h), fill, false)
	}

	indicatorX := float32(float64(bar.x) + progress*float64(bar.w))
	vector.DrawFilledCircle(screen, indicatorX, float32(bar.y+bar.h/2), 6, color.White, true)

	ebitenutil.DebugPrintAt(screen, formatDuration(g.position), bar.x+4, bar.y)
	total := formatDuration(duration)
	ebitenutil.DebugPrintAt(screen, total, bar.x+bar.w-len(total)*6-4, bar.y)

	if g.barHovered {
		mouseX, mouseY := ebiten.CursorPosition()
		tooltip := formatDuration(time.Duration(bar.fraction(mouseX) * float64(duration)))
		tooltipWidth := len(tooltip)*6 + 10
		tooltipX := min(max(mouseX-tooltipWidth/2, 0), g.cfg.Window.Width-tooltipWidth)
		tooltipY := mouseY - 25

		vector.DrawFilledRect(screen, float32(tooltipX), float32(tooltipY), float32(tooltipWidth), 20, color.RGBA{A: 200}, false)
		vector.StrokeRect(screen, float32(tooltipX), float32(tooltipY), float32(tooltipWidth), 20, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
		ebitenutil.DebugPrintAt(screen, tooltip, tooltipX+5, tooltipY+2)
	}
}

func (g *Game) status() string {
	var status string
	switch {
	case !g.player.Loaded():
		status = "Click the button to open an audio file"
	case g.player.Paused():
		status = "Paused - Space to play, click button to open another"
	default:
		status = "Playing - Space to pause, click button to open another"
	}
	if g.effects.Focused() != "" {
		status = "Terminal - type a command, Enter to run, Tab/Esc to leave"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}
