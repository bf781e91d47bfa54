// internal/storage/syncer.go
package storage

import (
	"context"
	"errors"
	"go-dodge-tejecks/internal/profile"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultSyncTimeout: сколько ждать все хранилища на одну запись.
const DefaultSyncTimeout = 5 * time.Second

// Syncer разбирает Outbox в отдельной горутине и пишет каждую запись во все
// хранилища параллельно. Ошибки логируются; повтор: только следующей
// записью из игры.
type Syncer struct {
	outbox  *Outbox
	stores  []Store
	timeout time.Duration
	logger  zerolog.Logger
}

func NewSyncer(outbox *Outbox, timeout time.Duration, stores ...Store) *Syncer {
	if timeout <= 0 {
		timeout = DefaultSyncTimeout
	}
	return &Syncer{
		outbox:  outbox,
		stores:  stores,
		timeout: timeout,
		logger:  log.With().Str("component", "syncer").Logger(),
	}
}

// Run работает до отмены ctx, затем дописывает то, что осталось в очереди.
// Запись, уже взятая из очереди, доводится до конца и после отмены: ctx
// ограничивает только ожидание, а не сами записи.
func (s *Syncer) Run(ctx context.Context) {
	writes := context.WithoutCancel(ctx)
	for {
		if ctx.Err() != nil {
			s.flush(writes)
			return
		}
		select {
		case <-ctx.Done():
			s.flush(writes)
			return
		case r := <-s.outbox.C():
			_ = s.Sync(writes, r)
		}
	}
}

func (s *Syncer) flush(ctx context.Context) {
	for {
		select {
		case r := <-s.outbox.C():
			_ = s.Sync(ctx, r)
		default:
			return
		}
	}
}

// Sync записывает одну запись во все хранилища. Возвращает первую ошибку,
// но остальные хранилища всё равно дописываются.
func (s *Syncer) Sync(ctx context.Context, r profile.Record) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var g errgroup.Group
	for _, st := range s.stores {
		g.Go(func() error {
			start := time.Now()
			err := st.Save(ctx, r)
			if errors.Is(err, ErrSkipped) {
				s.logger.Debug().Err(err).Str("store", st.Name()).Msg("save skipped")
				return nil
			}
			if err != nil {
				s.logger.Warn().Err(err).Str("store", st.Name()).Int("total", r.TotalPoints).Msg("save failed")
				return err
			}
			s.logger.Debug().Str("store", st.Name()).Int("total", r.TotalPoints).
				Dur("took", time.Since(start)).Msg("progress saved")
			return nil
		})
	}
	return g.Wait()
}
