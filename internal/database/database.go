package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of the pgx pool the readiness probe needs
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions tunes the PostgreSQL connection pool
type PoolOptions struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration

	// ApplicationName is reported in pg_stat_activity
	ApplicationName string
}

// DefaultPoolOptions returns the server's pool settings for maxConns connections
func DefaultPoolOptions(maxConns int) PoolOptions {
	return PoolOptions{
		MaxConns:        maxConns,
		MaxConnIdleTime: DefaultMaxConnIdleTime,
		MaxConnLifetime: DefaultMaxConnLifetime,
		ApplicationName: DefaultApplicationName,
	}
}

// NewPool connects to PostgreSQL and pings once before returning
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	config.MaxConns = int32(min(max(opts.MaxConns, 1), math.MaxInt32))
	config.MinConns = min(DefaultMinConnections, config.MaxConns)
	config.MaxConnIdleTime = opts.MaxConnIdleTime
	config.MaxConnLifetime = opts.MaxConnLifetime
	if opts.ApplicationName != "" {
		config.ConnConfig.RuntimeParams["application_name"] = opts.ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", config.MaxConns, "application_name", opts.ApplicationName)
	return pool, nil
}
