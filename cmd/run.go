package cmd

import (
	"github.com/iburimskiy/galactic-visuals/internal/game"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the visualizer window",
	RunE:  runWindow,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().String("audio", "", "audio file to play on start (wav, mp3, flac)")
	}
	rootCmd.AddCommand(runCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	audioPath, _ := cmd.Flags().GetString("audio")

	g := game.New(cfg, logger, newRand(cfg.Seed))
	if audioPath != "" {
		if err := g.Open(audioPath); err != nil {
			// keep the window usable; the dialog can pick another file
			logger.Error("startup audio", "err", err)
		}
	}
	logger.Info("window open", "width", cfg.Window.Width, "height", cfg.Window.Height)
	return g.Run()
}
