package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/birds-planes/internal/platform/desktop"
)

var (
	flagAssets string
	flagTouch  bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a window.

Keyboard controls match the terminal version. With a mouse or a touch
screen, use the on-screen d-pad (bottom left) to move and tap anywhere
to start, resume or play again.

Images are read from the assets directory (plane_small.png,
plane_med.png, plane_large.png, bird_1.png to bird_3.png,
background.png). Missing images are drawn as simple shapes.

Examples:
  birdsplanes window
  birdsplanes window --assets ./assets --touch`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with image assets")
	windowCmd.Flags().BoolVar(&flagTouch, "touch", false, "Always show the on-screen controls")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := newSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	return desktop.Run(s.game, desktop.Options{
		AssetDir:  flagAssets,
		TPS:       flagFPS,
		ShowTouch: flagTouch,
	}, logger)
}
