// cmd/simulate/main.go
// Безголовый прогон: автопилот играет уровень, итог пишется в лог.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-dodge-tejecks/internal/app"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/profile"
	"go-dodge-tejecks/internal/storage"

	"github.com/rs/zerolog/log"
)

var (
	levelName = flag.String("level", "Easy", "level name")
	runs      = flag.Int("runs", 1, "number of runs")
	maxFrames = flag.Int("frames", 60*config.FrameRate, "frame limit per run, then quit")
	seed      = flag.Int64("seed", 0, "gameplay seed, 0 = time based")
	realtime  = flag.Bool("realtime", false, "tick at 60 fps instead of as fast as possible")
	savePath  = flag.String("save", "", "persist the profile to this file")
)

func main() {
	flag.Parse()
	settings := config.LoadSettings()
	config.SetupLogger(settings.LogLevel)

	levels := defs.DefaultLevels()
	if settings.LevelsFile != "" {
		var err error
		if levels, err = defs.LoadLevels(settings.LevelsFile); err != nil {
			log.Fatal().Err(err).Msg("levels")
		}
	}
	level, _, err := levels.Find(*levelName)
	if err != nil {
		log.Fatal().Err(err).Strs("known", levels.Names()).Msg("level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := profile.Default()
	var checkpoints app.Checkpointer
	synced := make(chan struct{})
	stopSync := func() {}
	if *savePath != "" {
		store := storage.NewFileStore(*savePath)
		rec = storage.LoadOrDefault(ctx, store)
		outbox := storage.NewOutbox(4)
		checkpoints = outbox
		syncCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		stopSync = cancel
		go func() {
			defer close(synced)
			storage.NewSyncer(outbox, storage.DefaultSyncTimeout, store).Run(syncCtx)
		}()
	} else {
		close(synced)
	}

	for i := 0; i < *runs && ctx.Err() == nil; i++ {
		runSeed := *seed
		if runSeed != 0 {
			runSeed += int64(i)
		}
		s := app.NewSession(level, &rec, checkpoints, app.Options{Seed: runSeed})
		driver := &app.FrameDriver{Session: s}

		start := time.Now()
		runCtx, cancelRun := context.WithCancel(ctx)
		o, err := driver.Run(ctx, frames(runCtx, *maxFrames, *realtime), func() app.Input { return app.Autopilot(s) })
		cancelRun()
		switch {
		case errors.Is(err, app.ErrTickerClosed):
			log.Debug().Int("frames", *maxFrames).Msg("frame limit reached")
		case err != nil:
			log.Warn().Err(err).Msg("run interrupted")
		}
		log.Info().
			Int("run", i+1).
			Str("level", o.Level).
			Str("state", o.State.String()).
			Int("score", o.Score).
			Int("max_combo", o.MaxCombo).
			Int("destroyed", o.Destroyed).
			Int("frames", s.ECS.Run.Frame).
			Dur("took", time.Since(start)).
			Msg("run finished")
	}

	stopSync()
	<-synced
	log.Info().Int("total", rec.TotalPoints).Int("high_score", rec.HighScore).Msg("profile")
}

// frames выдаёт n тиков и закрывает канал. В realtime: с частотой кадров.
func frames(ctx context.Context, n int, realtime bool) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		var ticker *time.Ticker
		if realtime {
			ticker = time.NewTicker(time.Second / config.FrameRate)
			defer ticker.Stop()
		}
		for i := 0; i < n; i++ {
			now := time.Now()
			if ticker != nil {
				select {
				case now = <-ticker.C:
				case <-ctx.Done():
					return
				}
			}
			select {
			case ch <- now:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
