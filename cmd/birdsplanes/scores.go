package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/birds-planes/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score",
	Long: `Display the stored high score and when it was set.

Examples:
  birdsplanes scores
  birdsplanes scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored high score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ResetHighScore(); err != nil {
			return err
		}
		fmt.Fprintln(out, "High score cleared.")
		return nil
	}

	rec, ok, err := store.Get(storage.HighScoreKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Score - Birds & Planes")
	fmt.Fprintln(out)

	if !ok {
		fmt.Fprintln(out, "No score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'birdsplanes play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-10s  %s\n", "Score", "Date")
	fmt.Fprintf(out, "  %-10s  %s\n", "-----", "----")
	fmt.Fprintf(out, "  %-10d  %s\n", rec.Value, rec.UpdatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}
