package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HerbFarmCalc_Go/internal/config"
	"github.com/osse101/HerbFarmCalc_Go/internal/database"
)

const devtoolMaxConns = 2

// connect opens a small pool using the same environment as the server
func connect(ctx context.Context) (*pgxpool.Pool, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	opts := database.DefaultPoolOptions(devtoolMaxConns)
	opts.ApplicationName = "devtool"
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), opts)
	if err != nil {
		return nil, nil, err
	}
	return pool, cfg, nil
}
