// Package game hosts the page in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/galactic-visuals/internal/audio"
	"github.com/iburimskiy/galactic-visuals/internal/config"
	"github.com/iburimskiy/galactic-visuals/internal/effect"
	"github.com/iburimskiy/galactic-visuals/internal/frame"
	"github.com/iburimskiy/galactic-visuals/internal/page"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
	"github.com/ncruces/zenity"
)

const (
	colorShiftSpeed = 0.01
	seekCooldown    = 50 * time.Millisecond
)

// Game implements ebiten.Game. Draw pumps the frame queue, so effect loops
// follow the display refresh.
type Game struct {
	cfg *config.Config
	log *log.Logger

	page    *page.Page
	hud     surface.Surface
	queue   *frame.Queue
	effects *effect.Registry

	ctx      *audio.Context
	player   *audio.Player
	analyser *audio.Analyser

	background color.Color
	colorPhase float64

	button        rect
	buttonHovered bool
	buttonPressed bool

	bar         rect
	barHovered  bool
	barDragging bool
	position    time.Duration
	lastSeek    time.Time

	keys    []ebiten.Key
	runes   []rune
	lastErr error
}

// New builds the page and audio stack and starts every effect whose
// element exists. cfg must be valid.
func New(cfg *config.Config, logger *log.Logger, rng *rand.Rand) *Game {
	g := &Game{
		cfg:        cfg,
		log:        logger,
		queue:      frame.NewQueue(),
		background: surface.MustHex(cfg.Window.Background),
		button:     rect{x: 20, y: 50, w: 120, h: 40},
		bar:        rect{x: 20, y: cfg.Window.Height - 26, w: cfg.Window.Width - 40, h: 16},
	}

	g.page = page.Build(cfg.Elements, func(w, h int) surface.Surface {
		return surface.NewCanvas(w, h)
	})
	g.hud = g.page.Lookup(cfg.Hero.Target)

	tap := audio.NewTap(nil, cfg.Audio.RingSize)
	g.ctx = audio.NewContext()
	g.analyser = audio.NewAnalyser(g.ctx, tap, audio.AnalyserOptions{
		FFTSize:     cfg.Spectrum.FFTSize,
		Smoothing:   cfg.Spectrum.Smoothing,
		MinDecibels: cfg.Spectrum.MinDecibels,
		MaxDecibels: cfg.Spectrum.MaxDecibels,
	})
	g.player = audio.NewPlayer(tap, time.Duration(cfg.Audio.BufferMillis)*time.Millisecond, logger)

	g.effects = effect.NewRegistry(logger)
	g.effects.Register(effect.Standard(cfg, effect.Deps{
		Rand:     rng,
		Playback: g.player,
		Muter:    g.player,
		Resumer:  g.ctx,
		Source:   g.analyser,
	})...)
	g.effects.InitAll(effect.Env{Page: g.page, Scheduler: g.queue})
	return g
}

// Open plays path and starts the visualizer.
func (g *Game) Open(path string) error {
	g.position = 0
	if err := g.player.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (g *Game) Update() error {
	g.handleMouse()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch hostAction(k, g.effects.Focused() != "") {
		case actionQuit:
			return ebiten.Termination
		case actionPause:
			g.player.TogglePause()
		case actionFocus:
			if !g.effects.Focus("terminal") {
				g.log.Debug("terminal unavailable")
			}
			continue
		case actionBlur:
			g.effects.Blur()
			continue
		}
		g.effects.HandleKey(effectKey(k))
	}
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	g.effects.HandleRunes(g.runes)

	g.effects.Update(time.Second / time.Duration(ebiten.TPS()))
	g.colorPhase = math.Mod(g.colorPhase+colorShiftSpeed, 1)
	if !g.barDragging {
		g.position = g.player.Position()
	}
	return nil
}

func (g *Game) handleMouse() {
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = g.button.contains(mouseX, mouseY)
	g.barHovered = g.bar.contains(mouseX, mouseY) && g.player.Loaded()

	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if g.buttonHovered && justPressed {
		g.buttonPressed = true
	}
	if justReleased {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openFileDialog(); err != nil {
				g.lastErr = err
				g.log.Error("open file", "err", err)
			}
		}
		g.buttonPressed = false
	}

	if g.barHovered && justPressed {
		g.barDragging = true
		g.seek(g.bar.fraction(mouseX), true)
	}
	if g.barDragging {
		fraction := g.bar.fraction(mouseX)
		g.position = time.Duration(fraction * float64(g.player.Duration()))
		if justReleased || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.barDragging = false
			g.seek(fraction, true)
			return
		}
		g.seek(fraction, false)
	}
}

// seek skips calls that arrive within the cooldown unless force is set.
func (g *Game) seek(fraction float64, force bool) {
	if !force && time.Since(g.lastSeek) < seekCooldown {
		return
	}
	if err := g.player.Seek(fraction); err != nil {
		g.lastErr = err
		return
	}
	g.lastSeek = time.Now()
}

func (g *Game) openFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.SupportedPatterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("file dialog: %w", err)
	}
	g.log.Debug("file selected", "path", filename)
	g.lastErr = nil
	return g.Open(filename)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	g.queue.Run()
	g.effects.Render(g.hud)

	for _, e := range g.page.Elements() {
		c, ok := e.Surface.(*surface.Canvas)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(e.X), float64(e.Y))
		screen.DrawImage(c.Image(), op)
	}

	g.drawButton(screen)
	g.drawProgressBar(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops every effect and releases audio.
func (g *Game) Close() {
	g.effects.TeardownAll()
	g.player.Close()
	g.ctx.Close()
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	defer g.Close()

	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetTPS(g.cfg.Window.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
