package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tidepool/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the resolved configuration as YAML",
	Long: `Print the configuration the game would run with: the first config file
found (--config, ~/.tidepool/configs/tidepool.yaml, ./configs/tidepool.yaml)
layered over the built-in defaults, with the difficulty preset applied.

Examples:
  tidepool config dump > tidepool.yaml
  tidepool config dump --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom tidepool.yaml")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
