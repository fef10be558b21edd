package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"os/signal"
	"time"

	"github.com/iburimskiy/galactic-visuals/internal/audio"
	"github.com/iburimskiy/galactic-visuals/internal/effect"
	"github.com/iburimskiy/galactic-visuals/internal/frame"
	"github.com/iburimskiy/galactic-visuals/internal/page"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the page headlessly to a PNG",
	Long: `Snapshot runs the effects without a window for a number of frames
and writes the composed page to a PNG file. With --audio the track is
decoded offline and drives the spectrum bars.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().String("out", "galaxy.png", "output PNG path")
	snapshotCmd.Flags().Int("frames", 120, "frames to run before capturing")
	snapshotCmd.Flags().Uint64("seed", 0, "star layout seed (overrides config, 0 keeps it)")
	snapshotCmd.Flags().String("audio", "", "audio file decoded offline into the analyser")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	frames, _ := cmd.Flags().GetInt("frames")
	seed, _ := cmd.Flags().GetUint64("seed")
	audioPath, _ := cmd.Flags().GetString("audio")
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", frames)
	}
	if seed == 0 {
		seed = cfg.Seed
	}

	p := page.Build(cfg.Elements, func(w, h int) surface.Surface {
		return surface.NewRaster(w, h)
	})
	queue := frame.NewQueue()
	deps := effect.Deps{Rand: newRand(seed)}

	var feeder *audio.Feeder
	if audioPath != "" {
		tap := audio.NewTap(nil, cfg.Audio.RingSize)
		actx := audio.NewContext()
		defer actx.Close()
		feeder, err = audio.OpenFeeder(audioPath, tap, cfg.Window.FPS)
		if err != nil {
			return err
		}
		defer feeder.Close()
		logger.Debug("audio feed", "file", audioPath, "rate", int(feeder.Format().SampleRate))
		deps.Playback = feeder
		deps.Resumer = actx
		deps.Source = audio.NewAnalyser(actx, tap, audio.AnalyserOptions{
			FFTSize:     cfg.Spectrum.FFTSize,
			Smoothing:   cfg.Spectrum.Smoothing,
			MinDecibels: cfg.Spectrum.MinDecibels,
			MaxDecibels: cfg.Spectrum.MaxDecibels,
		})
	}

	registry := effect.NewRegistry(logger)
	registry.Register(effect.Standard(cfg, deps)...)
	registry.InitAll(effect.Env{Page: p, Scheduler: queue})
	defer registry.TeardownAll()

	dt := time.Second / time.Duration(cfg.Window.FPS)
	var tick func()
	tick = func() {
		if feeder != nil {
			feeder.Advance()
		}
		registry.Update(dt)
		queue.Request(tick)
	}
	queue.Request(tick)
	if feeder != nil {
		feeder.Start()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	logger.Debug("rendering", "frames", frames, "seed", seed)
	if err := frame.NewTicker(queue, cfg.Window.FPS).Run(ctx, frames); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	registry.Render(p.Lookup(cfg.Hero.Target))

	img := compose(p, cfg.Window.Width, cfg.Window.Height, surface.MustHex(cfg.Window.Background))
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", out, "frames", queue.Frames())
	return nil
}

// compose layers the raster elements over the background in page order.
func compose(p *page.Page, width, height int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for _, e := range p.Elements() {
		r, ok := e.Surface.(*surface.Raster)
		if !ok {
			continue
		}
		src := r.Image()
		at := src.Bounds().Add(image.Pt(e.X, e.Y))
		draw.Draw(dst, at, src, src.Bounds().Min, draw.Over)
	}
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
