package bootstrap

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HerbFarmCalc_Go/internal/database/postgres"
	"github.com/osse101/HerbFarmCalc_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Player repository.Player
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	repos := &Repositories{
		Player: postgres.NewPlayerRepository(dbPool),
	}
	slog.Info(LogMsgRepositoriesReady)
	return repos
}
