package repository

import (
	"context"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// Player handles player state persistence
type Player interface {
	// GetPlayer returns the stored snapshot or domain.ErrPlayerNotFound
	GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error)

	// UpsertPlayer replaces every stored skill and flag for the player
	UpsertPlayer(ctx context.Context, state *domain.PlayerState) error

	// DeletePlayer removes the player; deleting a missing player returns domain.ErrPlayerNotFound
	DeletePlayer(ctx context.Context, name string) error

	// ListPlayers returns stored player names in alphabetical order
	ListPlayers(ctx context.Context) ([]string, error)
}
