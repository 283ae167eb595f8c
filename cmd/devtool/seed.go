package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/osse101/HerbFarmCalc_Go/internal/database/postgres"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/profile"
)

type playerUpserter interface {
	UpsertPlayer(ctx context.Context, state *domain.PlayerState) error
}

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed stored players from the players in a profile directory"
}

func (c *SeedCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	dir := fs.String("dir", "profiles", "Profile directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	players, err := playersFromProfiles(profile.NewLoader(*dir))
	if err != nil {
		return err
	}
	if len(players) == 0 {
		PrintWarning("No profiles in %s carry a player section", *dir)
		return nil
	}

	ctx := context.Background()
	pool, _, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := seedPlayers(ctx, postgres.NewPlayerRepository(pool), players)
	if err != nil {
		return err
	}
	PrintSuccess("Seeded %d players from %s", n, *dir)
	return nil
}

// playersFromProfiles collects the player state of every profile that has one
func playersFromProfiles(loader *profile.Loader) ([]*domain.PlayerState, error) {
	names, err := loader.Names()
	if err != nil {
		return nil, err
	}

	var players []*domain.PlayerState
	for _, name := range names {
		p, err := loader.Get(name)
		if err != nil {
			return nil, err
		}
		state := p.PlayerState()
		if state == nil || state.Name == "" {
			continue
		}
		players = append(players, state)
	}
	return players, nil
}

func seedPlayers(ctx context.Context, repo playerUpserter, players []*domain.PlayerState) (int, error) {
	for i, state := range players {
		if err := state.Validate(); err != nil {
			return i, fmt.Errorf("player %q: %w", state.Name, err)
		}
		if err := repo.UpsertPlayer(ctx, state); err != nil {
			return i, fmt.Errorf("player %q: %w", state.Name, err)
		}
		PrintInfo("Seeded %s", state.Name)
	}
	return len(players), nil
}
