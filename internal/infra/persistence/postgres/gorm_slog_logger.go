package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"safetrack/config"
	deliverycontext "safetrack/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// newGormSlogLogger routes GORM output through slog. Queries log at info only
// in debug mode; slow ones warn past database.slowQueryThreshold.
func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if baseLogger != nil {
		l.logger = baseLogger.With(slog.String("component", "gorm"))
	}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		if cfg.Database.SlowQueryThreshold > 0 {
			l.slowThreshold = cfg.Database.SlowQueryThreshold
		}
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, gate logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < gate {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed and slow statements, and every statement at info level.
// Missing rows are an expected outcome here and never logged.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, l.logger)

	query := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRowsFn()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}, extra...)
	}

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return
	case err != nil && errors.Is(err, context.Canceled) && l.level >= logger.Error:
		reqLogger.LogAttrs(ctx, slog.LevelDebug, "GORM query cancelled", query()...)
	case err != nil && l.level >= logger.Error:
		reqLogger.LogAttrs(ctx, slog.LevelError, "GORM query failed", query(slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		reqLogger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", query(slog.Duration("slow_threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		reqLogger.LogAttrs(ctx, slog.LevelInfo, "GORM query", query()...)
	}
}
