package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"safetrack/config"
	"safetrack/internal/domain/lifecycle"
	"safetrack/internal/errors"
	"safetrack/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWaitCheckInterval = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond

	dbStatsName = "safetrack"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary pool (plus replicas when configured) and ties its
// lifetime to the fx app. Start pings, registers pool metrics and optionally
// migrates the schema.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open location store")
	}
	// Multi-statement work goes through TransactionManager; single writes need no implicit tx.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get location store sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping location store")
			}

			if err := params.Metrics.RegisterDBStats(sqlDB, dbStatsName); err != nil {
				return err
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolWaits warns when ingestion starts queueing for connections. The
// pool gauges themselves are exported through metrics.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolWaitCheckInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if waits, waited := poolWaitDelta(prev, cur); waited >= poolWaitWarnThreshold {
				logger.LogAttrs(ctx, slog.LevelWarn, "Location store pool saturated",
					slog.Int64("waits", waits),
					slog.Duration("waited", waited),
					slog.Int("in_use", cur.InUse),
					slog.Int("max_open", cur.MaxOpenConnections),
				)
			}
			prev = cur
		}
	}
}

func poolWaitDelta(prev, cur sql.DBStats) (int64, time.Duration) {
	return cur.WaitCount - prev.WaitCount, cur.WaitDuration - prev.WaitDuration
}
