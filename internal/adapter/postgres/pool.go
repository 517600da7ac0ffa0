package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mynotes-backend/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// It parses the DSN, applies pool settings (max/min conns, lifetimes), and pings
// the database, retrying with exponential backoff up to cfg.ConnectAttempts times
// so the server can start alongside a database that is still booting.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	var pool *pgxpool.Pool
	err = retry.Do(
		func() error {
			p, err := pgxpool.NewWithConfig(ctx, poolCfg)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create connection pool: %w", err))
			}
			if err := p.Ping(ctx); err != nil {
				p.Close()
				return fmt.Errorf("ping database: %w", err)
			}
			pool = p
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(cfg.ConnectAttempts),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.WarnContext(ctx, "database not ready, retrying",
				slog.Uint64("attempt", uint64(n+1)),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		return nil, err
	}

	return pool, nil
}
