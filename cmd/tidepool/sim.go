package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/game"
	"github.com/vovakirdan/tidepool/internal/platform/headless"
	"github.com/vovakirdan/tidepool/internal/platform/tui"
	"github.com/vovakirdan/tidepool/internal/storage"
)

var (
	flagRuns    int
	flagWorkers int
	flagMaxTime float64
	flagDT      float64
	flagSave    bool
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot dives",
	Long: `Play sessions without a terminal using the built-in autopilot and print
the results. Runs are spread over several workers; each gets its own seed
counting up from --seed.

Examples:
  tidepool sim
  tidepool sim --runs 16 --max-time 300
  tidepool sim --seed 7 --runs 1 --verbose
  tidepool sim --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom tidepool.yaml")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().IntVar(&flagRuns, "runs", 4, "Number of sessions")
	simCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Sessions played at once")
	simCmd.Flags().Float64Var(&flagMaxTime, "max-time", 0, "Stop each session after this many seconds (0 = configured win time)")
	simCmd.Flags().Float64Var(&flagDT, "dt", 0, "Seconds per tick (0 = 1/fps)")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished sessions in the run history")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine events to stderr")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	pool, err := assets.FromConfig(cfg.Models)
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	dt := flagDT
	if dt <= 0 && flagFPS > 0 {
		dt = 1 / float64(flagFPS)
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	seeds := make([]int64, flagRuns)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := headless.RunBatch(ctx, cfg, seeds, flagWorkers, headless.Options{
		MaxTime: flagMaxTime,
		DT:      dt,
		Models:  pool,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	logger.Info("batch finished", "runs", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	printResults(results)

	if flagSave {
		return saveResults(results)
	}
	return nil
}

func outcomeLabel(o game.State) string {
	switch o {
	case game.StateWin:
		return "surfaced"
	case game.StateGameOver:
		return "lost"
	default:
		return "timeout"
	}
}

func printResults(results []game.RunResult) {
	fmt.Printf("  %-20s  %-8s  %7s  %5s  %5s  %6s  %5s\n", "Seed", "Outcome", "Score", "Time", "Level", "Kills", "Boss")
	fmt.Printf("  %-20s  %-8s  %7s  %5s  %5s  %6s  %5s\n", "----", "-------", "-----", "----", "-----", "-----", "----")

	var wins, total int
	for _, r := range results {
		fmt.Printf("  %-20d  %-8s  %7d  %5s  %5d  %6d  %5d\n",
			r.Seed, outcomeLabel(r.Outcome), r.Score, tui.FormatClock(r.Survived), r.Level, r.Kills, r.BossKills)
		if r.Outcome == game.StateWin {
			wins++
		}
		total += r.Score
	}

	fmt.Println()
	fmt.Printf("Surfaced %d of %d, average score %d\n", wins, len(results), total/len(results))
}

func saveResults(results []game.RunResult) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("could not open run history: %w", err)
	}
	defer store.Close()

	saved := 0
	for _, r := range results {
		if !r.Finished() {
			continue
		}
		if _, err := store.SaveResult(r); err != nil {
			return err
		}
		saved++
	}
	fmt.Printf("Saved %d finished runs to %s\n", saved, flagDBPath)
	return nil
}
