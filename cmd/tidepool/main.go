// tidepool is a top-down survival game played in the terminal: a diver
// holds out against the deep until the timer runs out.
//
// Usage:
//
//	tidepool play            - Start an interactive dive
//	tidepool sim             - Run headless autopilot dives
//	tidepool scores          - Show the run history
//	tidepool config dump     - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tidepool/tidepool.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Shared by play, sim and config dump
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tidepool",
	Short: "Tidepool - survive the deep in your terminal",
	Long: `Tidepool is a top-down survival game. Steer the diver, harpoon whatever
swims close, eat kelp to grow stronger and outlast the leviathan.

Available commands:
  play     - Start an interactive dive
  sim      - Run headless autopilot dives
  scores   - View the run history
  config   - Inspect the configuration

Examples:
  tidepool play
  tidepool play --difficulty hard
  tidepool sim --runs 8 --max-time 120
  tidepool scores --interactive
  tidepool config dump --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, applies the difficulty preset and
// validates the result.
func loadConfig(path, difficulty string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tidepool",
		Level:           level,
	})
}
