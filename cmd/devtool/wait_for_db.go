package main

import (
	"context"
	"flag"
	"fmt"
	"time"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	attempts := fs.Int("attempts", 30, "Maximum connection attempts")
	interval := fs.Duration("interval", time.Second, "Delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Waiting for database")

	var lastErr error
	for i := 1; i <= *attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		pool, _, err := connect(ctx)
		cancel()
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		lastErr = err
		PrintInfo("Database unavailable, retrying (%d/%d)...", i, *attempts)
		time.Sleep(*interval)
	}
	return fmt.Errorf("database not ready after %d attempts: %w", *attempts, lastErr)
}
