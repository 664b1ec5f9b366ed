package db

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger forwards gorm's statement log into zerolog. Statement failures
// are only traced here; the store logs them once with operation context.
type gormLogger struct {
	log zerolog.Logger
}

func newGormLogger(log zerolog.Logger) logger.Interface {
	return gormLogger{log: log.With().Str("component", "gorm").Logger()}
}

// LogMode is a no-op, verbosity follows the zerolog level
func (l gormLogger) LogMode(logger.LogLevel) logger.Interface {
	return l
}

func (l gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}

func (l gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	l.log.Error().Msgf(msg, args...)
}

func (l gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	var ev *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		ev = l.log.Debug().Err(err)
	case elapsed > slowQueryThreshold:
		ev = l.log.Warn().Bool("slow", true)
	default:
		ev = l.log.Trace()
	}
	if !ev.Enabled() {
		return
	}

	sql, rows := fc()
	ev.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("statement")
}
