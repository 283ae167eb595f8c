package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/HerbFarmCalc_Go/internal/database"
)

var migrateSubcommands = []string{"up", "up-by-one", "up-to", "down", "down-to", "redo", "reset", "status", "version", "create"}

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, create, ...)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 || !slices.Contains(migrateSubcommands, args[0]) {
		return usageError("migrate <up|up-by-one|up-to|down|down-to|redo|reset|status|version|create> [args]")
	}
	subcmd := args[0]

	// New migration files live in the source tree, not the embedded set
	if subcmd == "create" {
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		if err := checkHostile(args[1]); err != nil {
			return err
		}
		return runCommandVerbose("go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", "internal/database/migrations", "create", args[1], "sql")
	}

	ctx := context.Background()
	pool, _, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, subcmd, args[1:]...); err != nil {
		return err
	}
	PrintSuccess("migrate %s complete", subcmd)
	return nil
}
