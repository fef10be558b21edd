package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/iburimskiy/galactic-visuals/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Constellation field and audio spectrum visualizer",
	Long: `Galaxy draws an animated constellation of stars, a frequency bar
visualizer driven by the playing track, and a small interactive HUD.
Without a subcommand it opens the window.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "galaxy.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the configuration and builds the logger.
func loadConfig() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log_level: %w", err)
	}
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "galaxy",
	})
	for _, target := range []string{cfg.Starfield.Target, cfg.Spectrum.Target, cfg.Hero.Target} {
		if _, ok := cfg.Element(target); !ok {
			logger.Debug("no element for target, its effects stay off", "target", target)
		}
	}
	return cfg, logger, nil
}

// newRand seeds from seed, or randomly when seed is zero.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
