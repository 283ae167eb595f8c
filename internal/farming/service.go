package farming

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
	"github.com/osse101/HerbFarmCalc_Go/internal/metrics"
	"github.com/osse101/HerbFarmCalc_Go/internal/pricing"
	"github.com/osse101/HerbFarmCalc_Go/internal/repository"
)

// CalculateRequest selects the player, calculator options and result ordering
type CalculateRequest struct {
	Player     string              `json:"player,omitempty"`
	Options    calculator.Options  `json:"options"`
	Sort       domain.SortCriteria `json:"sort,omitempty"`
	Descending bool                `json:"descending,omitempty"`
}

// Service runs herb calculations against stored player state and live prices
type Service interface {
	// Calculate resolves the player and price snapshots and runs the calculator.
	// A missing player or unavailable prices degrade the result with warnings.
	Calculate(ctx context.Context, req CalculateRequest) (*domain.CalculatorResult, error)
	GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error)
	SavePlayer(ctx context.Context, state *domain.PlayerState) error
	DeletePlayer(ctx context.Context, name string) error
	ListPlayers(ctx context.Context) ([]string, error)
}

type service struct {
	playerRepo repository.Player
	prices     pricing.Service
}

// NewService creates a new farming service
func NewService(playerRepo repository.Player, prices pricing.Service) Service {
	return &service{
		playerRepo: playerRepo,
		prices:     prices,
	}
}

// Calculate runs the herb calculator for one request
func (s *service) Calculate(ctx context.Context, req CalculateRequest) (*domain.CalculatorResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCalculate, "player", req.Player, "compost", req.Options.Compost, "patches", len(req.Options.Patches))

	criteria, err := domain.ParseSortCriteria(string(req.Sort))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.calculate(ctx, req)
	metrics.CalculationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues(req.Options.Compost.String(), metrics.ResultError).Inc()
		return nil, err
	}
	metrics.CalculationsTotal.WithLabelValues(req.Options.Compost.String(), metrics.ResultSuccess).Inc()
	if result.Degraded() {
		metrics.CalculationsDegraded.Inc()
	}

	result.Herbs = domain.SortHerbResults(result.Herbs, criteria, req.Descending)

	log.Info(LogMsgCalculateDone,
		"player", req.Player,
		"sort", criteria,
		"warnings", len(result.Warnings),
		"duration", time.Since(start))
	return result, nil
}

func (s *service) calculate(ctx context.Context, req CalculateRequest) (*domain.CalculatorResult, error) {
	var warnings []string

	state, warning, err := s.resolvePlayer(ctx, req.Player)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		warnings = append(warnings, warning)
	}

	prices, err := s.prices.Snapshot(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPriceSnapshotFail, "error", err, "priced_items", len(prices))
		warnings = append(warnings, fmt.Sprintf(WarnPricesUnavailable, err))
		if prices == nil {
			prices = domain.PriceTable{}
		}
	}

	calc, err := calculator.New(req.Options, state, prices)
	if err != nil {
		return nil, err
	}
	result, err := calc.Calculate()
	if err != nil {
		return nil, err
	}

	metrics.UnresolvedSignals.Add(float64(len(result.Warnings)))
	result.Warnings = append(warnings, result.Warnings...)
	return result, nil
}

// resolvePlayer loads the stored snapshot. An empty or unknown player yields a
// nil snapshot, which the calculator treats as fully unresolved.
func (s *service) resolvePlayer(ctx context.Context, name string) (*domain.PlayerState, string, error) {
	if name == "" {
		return nil, WarnNoPlayer, nil
	}

	state, err := s.playerRepo.GetPlayer(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			logger.FromContext(ctx).Warn(LogMsgPlayerLookupFail, "player", name)
			return nil, fmt.Sprintf(WarnPlayerNotFound, name), nil
		}
		return nil, "", fmt.Errorf("%w: failed to load player: %v", domain.ErrDatabaseError, err)
	}
	return state, "", nil
}

// GetPlayer returns the stored state for a player
func (s *service) GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error) {
	return s.playerRepo.GetPlayer(ctx, name)
}

// SavePlayer validates and stores a player snapshot
func (s *service) SavePlayer(ctx context.Context, state *domain.PlayerState) error {
	if state == nil || domain.NormalizePlayerName(state.Name) == "" {
		return fmt.Errorf("%w: player name is required", domain.ErrInvalidInput)
	}
	if len(state.Name) > domain.MaxPlayerNameLength {
		return fmt.Errorf("%w: player name longer than %d characters", domain.ErrInvalidInput, domain.MaxPlayerNameLength)
	}
	if err := state.Validate(); err != nil {
		return err
	}

	if err := s.playerRepo.UpsertPlayer(ctx, state); err != nil {
		return err
	}
	metrics.PlayerStatesSaved.Inc()
	logger.FromContext(ctx).Info(LogMsgPlayerSaved, "player", state.Name, "skills", len(state.Skills), "flags", len(state.Flags))
	return nil
}

// DeletePlayer removes a stored player
func (s *service) DeletePlayer(ctx context.Context, name string) error {
	if err := s.playerRepo.DeletePlayer(ctx, name); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPlayerDeleted, "player", name)
	return nil
}

// ListPlayers returns every stored player name
func (s *service) ListPlayers(ctx context.Context) ([]string, error) {
	return s.playerRepo.ListPlayers(ctx)
}
