package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"quickeats/config"
	"quickeats/internal/domain/lifecycle"
	"quickeats/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
	poolStatsName     = "quickeats"
)

// PoolStatsRegistrar exports connection pool statistics.
type PoolStatsRegistrar interface {
	RegisterDBStats(db *sql.DB, name string) error
}

// Params defines the dependencies of the database client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	PoolStats PoolStatsRegistrar `optional:"true"`
}

// New opens the order store and ties its pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Unique violations surface as gorm.ErrDuplicatedKey.
	db.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-row writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.PoolStats != nil {
		if err := params.PoolStats.RegisterDBStats(sqlDB, poolStatsName); err != nil {
			return nil, errors.Wrap(err, "failed to register pool stats")
		}
	}

	watcher := &poolWatcher{db: sqlDB, logger: params.Logger, warnAfter: poolWaitWarnAfter}
	stopWatch := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			watchCtx, cancelWatch := context.WithCancel(context.Background())
			stopWatch = cancelWatch
			go watcher.run(watchCtx, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher reports callers that had to wait for a free connection.
type poolWatcher struct {
	db        *sql.DB
	logger    *slog.Logger
	warnAfter time.Duration
	last      sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.last = w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx, w.db.Stats())
		}
	}
}

// check compares cur against the previous sample and logs any new waits.
func (w *poolWatcher) check(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur
	if waits <= 0 || w.logger == nil {
		return
	}

	level := slog.LevelDebug
	if waited >= w.warnAfter {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Order store pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
