package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/birds-planes/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML: the first config
file found (or the built-in defaults), with invalid values replaced and
the --difficulty preset applied. Redirect it to a file to start a custom
config.

Examples:
  birdsplanes config
  birdsplanes config --difficulty hard > ~/.birdsplanes/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
