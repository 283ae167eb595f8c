package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetPlayer loads a player's stored skills and flags
func (r *PlayerRepository) GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error) {
	key := domain.NormalizePlayerName(name)

	state := domain.NewPlayerState("")
	err := r.db.QueryRow(ctx,
		`SELECT display_name, updated_at FROM players WHERE player_name = $1`, key,
	).Scan(&state.Name, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, name)
		}
		return nil, fmt.Errorf(ErrMsgFailedToGetPlayer+": %w", err)
	}

	if err := r.loadSkills(ctx, key, state); err != nil {
		return nil, err
	}
	if err := r.loadFlags(ctx, key, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *PlayerRepository) loadSkills(ctx context.Context, key string, state *domain.PlayerState) error {
	rows, err := r.db.Query(ctx, `SELECT skill, level FROM player_skills WHERE player_name = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to get player skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var skill string
		var level int
		if err := rows.Scan(&skill, &level); err != nil {
			return fmt.Errorf("failed to scan player skill: %w", err)
		}
		state.Skills[domain.Skill(skill)] = level
	}
	return rows.Err()
}

func (r *PlayerRepository) loadFlags(ctx context.Context, key string, state *domain.PlayerState) error {
	rows, err := r.db.Query(ctx, `SELECT flag, value FROM player_flags WHERE player_name = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to get player flags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var flag string
		var value int
		if err := rows.Scan(&flag, &value); err != nil {
			return fmt.Errorf("failed to scan player flag: %w", err)
		}
		state.Flags[domain.Flag(flag)] = value
	}
	return rows.Err()
}

// UpsertPlayer replaces the player's stored skills and flags in one transaction
func (r *PlayerRepository) UpsertPlayer(ctx context.Context, state *domain.PlayerState) error {
	key := domain.NormalizePlayerName(state.Name)
	if key == "" {
		return fmt.Errorf("%w: player name is required", domain.ErrInvalidInput)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToBeginTransaction+": %w", err)
	}
	defer rollback(ctx, tx)

	err = tx.QueryRow(ctx, `
		INSERT INTO players (player_name, display_name)
		VALUES ($1, $2)
		ON CONFLICT (player_name) DO UPDATE
		SET display_name = EXCLUDED.display_name, updated_at = NOW()
		RETURNING updated_at`,
		key, state.Name,
	).Scan(&state.UpdatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpsertPlayer+": %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM player_skills WHERE player_name = $1`, key)
	batch.Queue(`DELETE FROM player_flags WHERE player_name = $1`, key)
	for skill, level := range state.Skills {
		batch.Queue(`INSERT INTO player_skills (player_name, skill, level) VALUES ($1, $2, $3)`, key, string(skill), level)
	}
	for flag, value := range state.Flags {
		batch.Queue(`INSERT INTO player_flags (player_name, flag, value) VALUES ($1, $2, $3)`, key, string(flag), value)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.Message)
		}
		return fmt.Errorf(ErrMsgFailedToWriteState+": %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgFailedToCommit+": %w", err)
	}
	return nil
}

// DeletePlayer removes a player and, by cascade, their skills and flags
func (r *PlayerRepository) DeletePlayer(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM players WHERE player_name = $1`, domain.NormalizePlayerName(name))
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToDeletePlayer+": %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, name)
	}
	return nil
}

// ListPlayers returns stored display names ordered by storage key
func (r *PlayerRepository) ListPlayers(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT display_name FROM players ORDER BY player_name`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToListPlayers+": %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan players: %w", err)
	}
	return names, nil
}

// rollback is deferred after Begin; it is a no-op once the transaction committed
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}
