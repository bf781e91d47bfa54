// internal/config/settings.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Settings: параметры запуска, которые приходят из окружения (или .env).
type Settings struct {
	SavePath    string
	LevelsFile  string // пусто: встроенный levels.yaml
	LogLevel    zerolog.Level
	Audio       bool
	S3Bucket    string // пусто: облачная синхронизация выключена
	S3KeyPrefix string
	Seed        int64
	Pprof       string
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		SavePath:    "save_progress.json",
		LogLevel:    zerolog.InfoLevel,
		Audio:       true,
		S3KeyPrefix: "leaderboard/",
	}
}

// LoadSettings читает .env (если есть) и переменные окружения.
// Отсутствие .env не ошибка: значения по умолчанию покрывают всё.
func LoadSettings(envFiles ...string) Settings {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debug().Err(err).Msg("no .env loaded")
	}

	s := DefaultSettings()
	if v := os.Getenv("TEJECKS_SAVE_PATH"); v != "" {
		s.SavePath = v
	}
	s.LevelsFile = os.Getenv("TEJECKS_LEVELS_FILE")
	if v := os.Getenv("TEJECKS_LOG_LEVEL"); v != "" {
		if lvl, err := zerolog.ParseLevel(v); err == nil {
			s.LogLevel = lvl
		}
	}
	if v := os.Getenv("TEJECKS_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Audio = b
		}
	}
	s.S3Bucket = os.Getenv("TEJECKS_S3_BUCKET")
	if v := os.Getenv("TEJECKS_S3_KEY_PREFIX"); v != "" {
		s.S3KeyPrefix = v
	}
	if v := os.Getenv("TEJECKS_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = seed
		}
	}
	s.Pprof = os.Getenv("TEJECKS_PPROF")
	return s
}

// SetupLogger настраивает глобальный zerolog-логгер.
func SetupLogger(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}
