// birdsplanes is an arcade game: guide a bird across lanes of planes.
//
// Usage:
//
//	birdsplanes play          - Play in the terminal
//	birdsplanes window        - Play in a desktop window (keyboard, mouse, touch)
//	birdsplanes scores        - Show the high score
//	birdsplanes config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.birdsplanes/scores.db)
//	--config <path>       - Use a custom config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birdsplanes",
	Short: "Birds & Planes - get the bird across the sky",
	Long: `Birds & Planes is a small arcade game. Guide the bird from the safe
zone at the bottom to the finish zone at the top without touching the
planes flying across each lane. Every lane crossed scores points, the
finish scores a double bonus, and the game speeds up over time.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View or reset the high score
  config   - Print the effective configuration

Examples:
  birdsplanes play
  birdsplanes play --difficulty hard
  birdsplanes window --assets ./assets
  birdsplanes scores
  birdsplanes config --config ./my-birdsplanes.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.birdsplanes/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML or JSON")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
