// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go-dodge-tejecks/internal/audio"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/state"
	"go-dodge-tejecks/internal/storage"
	"go-dodge-tejecks/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

const outboxSize = 4

type AppGame struct {
	ctx          context.Context
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	a.stateMachine.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.LoadSettings()
	config.SetupLogger(settings.LogLevel)

	if settings.Pprof != "" {
		go func() {
			log.Warn().Err(http.ListenAndServe(settings.Pprof, nil)).Msg("pprof stopped")
		}()
	}

	levels := defs.DefaultLevels()
	if settings.LevelsFile != "" {
		var err error
		if levels, err = defs.LoadLevels(settings.LevelsFile); err != nil {
			log.Fatal().Err(err).Msg("levels")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	local := storage.NewFileStore(settings.SavePath)
	rec := storage.LoadOrDefault(ctx, local)
	stores := []storage.Store{local}
	if settings.S3Bucket != "" {
		client, err := storage.NewS3Client(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("cloud sync disabled")
		} else {
			remote := storage.NewS3Store(client, settings.S3Bucket, settings.S3KeyPrefix, rec.PlayerID)
			rec = storage.MergeRemote(ctx, rec, remote)
			stores = append(stores, remote)
		}
	}
	log.Info().Str("player", rec.PlayerID).Int("total", rec.TotalPoints).Int("high_score", rec.HighScore).Msg("profile loaded")

	outbox := storage.NewOutbox(outboxSize)
	syncer := storage.NewSyncer(outbox, storage.DefaultSyncTimeout, stores...)
	syncCtx, stopSync := context.WithCancel(ctx)
	synced := make(chan struct{})
	go func() {
		defer close(synced)
		syncer.Run(syncCtx)
	}()

	host := &state.Host{
		Levels:      levels,
		Profile:     &rec,
		Checkpoints: outbox,
		Renderer: render.NewFieldRenderer(config.ScreenWidth, config.ScreenHeight, render.FieldColors{
			Background:     config.BackgroundColor,
			BossBackground: config.BossBackgroundColor,
			Text:           config.TextDarkColor,
			TextLight:      config.TextLightColor,
			TextOnPickup:   config.Black,
			Stroke:         config.White,
			HitFlash:       config.Red,
			HitFlashInner:  config.Orange,
			BarBack:        config.BarBackColor,
			BarHigh:        config.Green,
			BarMid:         config.Yellow,
			BarLow:         config.Red,
			BossTitle:      config.Red,
			BossPhase:      config.Purple,
		}),
		Seed: settings.Seed,
	}
	if settings.Audio {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			// без звука играть можно
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			host.Sound = sounds
			defer sounds.Cleanup()
		}
	}

	sm := state.NewStateMachine(host)
	sm.SetState(state.NewMenuState(sm))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Dodge the Tejecks")
	ebiten.SetTPS(config.FrameRate)
	err := ebiten.RunGame(&AppGame{ctx: ctx, stateMachine: sm})

	sm.Shutdown()
	outbox.Enqueue(rec.Clone())
	stopSync()
	<-synced

	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop")
	}
}
