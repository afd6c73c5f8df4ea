package headless

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/game"
)

// ErrTickLimit is returned when a run neither ends nor exits within the
// tick budget derived from its time limit.
var ErrTickLimit = errors.New("headless: tick limit reached")

// Ticks between context checks.
const ctxCheckEvery = 256

// Options configures a headless run.
type Options struct {
	MaxTime float64 // Seconds of simulated time; 0 plays to the configured win time
	DT      float64 // Seconds per tick; 0 uses the default tick rate

	Models game.ModelPool   // Built from the config when nil
	Sound  game.SoundPlayer // Silent when nil
	Logger *log.Logger      // Discarded when nil
}

// Run plays one session with the autopilot and returns its result. A run
// cut short by MaxTime reports StatePlaying as its outcome.
func Run(ctx context.Context, cfg config.Config, seed int64, opts Options) (game.RunResult, error) {
	rt := core.DefaultConfig()
	rt.Seed = seed
	dt := opts.DT
	if dt <= 0 {
		dt = rt.FrameDelta()
	}

	models := opts.Models
	if models == nil {
		pool, err := assets.FromConfig(cfg.Models)
		if err != nil {
			return game.RunResult{}, err
		}
		models = pool
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pilot := NewPilot()
	ui := &AutoUI{MaxTime: opts.MaxTime}
	eng, err := game.NewEngine(cfg, rt, game.Collaborators{
		Renderer: pilot,
		Sound:    opts.Sound,
		UI:       ui,
		Input:    pilot,
		Models:   models,
	})
	if err != nil {
		return game.RunResult{}, err
	}
	eng.SetLogger(logger.With("seed", seed))

	limit := opts.MaxTime
	if limit <= 0 || limit > cfg.Session.WinTime {
		limit = cfg.Session.WinTime
	}
	// A few spare ticks for the menu, reset and exit transitions.
	maxTicks := int(limit/dt) + 16

	for tick := 0; !eng.ExitRequested(); tick++ {
		if tick%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return eng.Result(), err
			}
		}
		if tick > maxTicks {
			return eng.Result(), fmt.Errorf("%w: %d ticks at dt=%v", ErrTickLimit, maxTicks, dt)
		}
		eng.Tick(dt)
	}

	res := eng.Result()
	if !res.Finished() {
		res.Outcome = game.StatePlaying
	}
	logger.Debug("run finished",
		"seed", seed, "outcome", res.Outcome, "score", res.Score,
		"survived", res.Survived, "picks", ui.Picks)
	return res, nil
}

// RunBatch plays one session per seed, at most workers at a time (0 means
// no limit). Results keep the order of seeds. The first failing run cancels
// the rest.
func RunBatch(ctx context.Context, cfg config.Config, seeds []int64, workers int, opts Options) ([]game.RunResult, error) {
	results := make([]game.RunResult, len(seeds))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, seed := range seeds {
		eg.Go(func() error {
			res, err := Run(ctx, cfg, seed, opts)
			if err != nil {
				return fmt.Errorf("headless: run %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
