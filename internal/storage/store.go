// internal/storage/store.go
package storage

import (
	"context"
	"errors"
	"go-dodge-tejecks/internal/profile"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotFound: сохранения ещё нет.
	ErrNotFound = errors.New("record not found")
	// ErrCorrupt: сохранение есть, но не читается.
	ErrCorrupt = errors.New("record corrupt")
	// ErrSkipped: хранилище решило не перезаписывать более свежую запись.
	ErrSkipped = errors.New("save skipped")
)

// Store: хранилище прогресса одного игрока.
type Store interface {
	Name() string
	Save(ctx context.Context, r profile.Record) error
	Load(ctx context.Context) (profile.Record, error)
}

// LoadOrDefault читает локальное сохранение. Отсутствующий или битый файл
// не фатален: игра стартует с чистого профиля.
func LoadOrDefault(ctx context.Context, store Store) profile.Record {
	r, err := store.Load(ctx)
	switch {
	case err == nil:
		r.Normalize()
		return r
	case errors.Is(err, ErrNotFound):
		log.Info().Str("store", store.Name()).Msg("no saved progress, starting fresh")
	default:
		log.Warn().Err(err).Str("store", store.Name()).Msg("failed to load progress, starting fresh")
	}
	return profile.Default()
}

// MergeRemote подтягивает удалённую запись того же игрока и сводит её с
// локальной (profile.Merge). Ошибки удалённого хранилища только логируются.
func MergeRemote(ctx context.Context, local profile.Record, remote Store) profile.Record {
	r, err := remote.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Str("store", remote.Name()).Msg("remote load failed")
		}
		return local
	}
	r.Normalize()
	merged := profile.Merge(local, r)
	if merged.TotalPoints != local.TotalPoints {
		log.Info().Str("store", remote.Name()).Int("total", merged.TotalPoints).Msg("remote progress is ahead, using it")
	}
	return merged
}
