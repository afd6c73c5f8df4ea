package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/game"
	"github.com/vovakirdan/tidepool/internal/platform/audio"
	"github.com/vovakirdan/tidepool/internal/platform/tui"
	"github.com/vovakirdan/tidepool/internal/storage"
)

var (
	flagMute    bool
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive dive",
	Long: `Start an interactive session in the terminal.

Controls:
  W/A/S/D      - Swim
  Arrows/Mouse - Aim the harpoon
  Enter/Space  - Start
  1-9          - Pick an upgrade
  R            - Restart after a run ends
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, slower spawns and a lazier leviathan
  normal - The configured values
  hard   - One tier higher from the start, faster spawns
  fixed  - The tier never escalates

Examples:
  tidepool play
  tidepool play --difficulty easy
  tidepool play --config ./my-tidepool.yaml --log ./tidepool.log
  tidepool play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom tidepool.yaml")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file
	var logger *log.Logger
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, log.DebugLevel)
	}

	pool, err := assets.FromConfig(cfg.Models)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var sound game.SoundPlayer = audio.Nop{}
	if !flagMute && cfg.Audio.Enabled {
		player := audio.New(cfg.Audio, logger)
		if err := player.Init(); err != nil {
			if logger != nil {
				logger.Warn("audio unavailable, playing muted", "err", err)
			}
		} else {
			defer player.Close()
			sound = player
		}
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	res, err := tui.Run(cfg, rt, tui.Options{
		Models: pool,
		Sound:  sound,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if res.Finished() {
		fmt.Printf("Last dive: %s - score %d, level %d, %d kills, %s survived\n",
			res.Outcome, res.Score, res.Level, res.Kills, tui.FormatClock(res.Survived))
	}
	return nil
}
