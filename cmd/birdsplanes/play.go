package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/birds-planes/internal/core"
	"github.com/vovakirdan/birds-planes/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Move the bird
  Space/Enter  - Start, resume, play again
  P            - Pause
  M            - Sound on/off
  R            - Restart (after game over)
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower speed-up
  normal - Configured values
  hard   - Fewer lives, faster speed-up
  fixed  - No speed-up

Logs go to ~/.birdsplanes/play.log unless --log-file is given,
because the terminal belongs to the game.

Examples:
  birdsplanes play
  birdsplanes play --difficulty easy
  birdsplanes play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logPath := flagLogFile
	if logPath == "" {
		logPath = "~/.birdsplanes/play.log"
	}
	logger, closeLog, err := newLogger(logPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	s, err := newSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(s.game, cfg, logger)
}
