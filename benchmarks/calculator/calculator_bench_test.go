package calculator_bench

import (
	"context"
	"io"
	"testing"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/farming"
	"github.com/osse101/HerbFarmCalc_Go/internal/pricing"
	"github.com/osse101/HerbFarmCalc_Go/internal/report"
)

// --- Stubs (zero-overhead stand-ins for benchmarking) ---

type StubPlayerRepository struct {
	state *domain.PlayerState
}

func (s *StubPlayerRepository) GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error) {
	return s.state, nil
}
func (s *StubPlayerRepository) UpsertPlayer(ctx context.Context, state *domain.PlayerState) error {
	return nil
}
func (s *StubPlayerRepository) DeletePlayer(ctx context.Context, name string) error { return nil }
func (s *StubPlayerRepository) ListPlayers(ctx context.Context) ([]string, error) {
	return []string{s.state.Name}, nil
}

func maxedPlayer() *domain.PlayerState {
	p := domain.NewPlayerState("lynx titan")
	p.Skills[domain.SkillFarming] = 99
	p.Skills[domain.SkillMagic] = 99
	p.Flags[domain.FlagKandarinDiary] = int(domain.DiaryElite)
	p.Flags[domain.FlagKourendDiary] = int(domain.DiaryElite)
	p.Flags[domain.FlagFaladorDiary] = int(domain.DiaryElite)
	p.Flags[domain.FlagHosidiusFavor] = domain.HosidiusFavorMax
	return p
}

func fullPrices() domain.PriceTable {
	table := make(domain.PriceTable)
	for i, id := range domain.PricedItems() {
		table[id] = 100 + 37*i
	}
	return table
}

func allExtras() calculator.Options {
	opts := calculator.DefaultOptions()
	opts.AnimaPlant = domain.AnimaAttas
	opts.MagicSecateurs = true
	opts.FarmingCape = true
	opts.BottomlessBucket = true
	opts.ResurrectCrops = true
	return opts
}

// BenchmarkCalculate measures one full run over every herb and patch
func BenchmarkCalculate(b *testing.B) {
	calc, err := calculator.New(allExtras(), maxedPlayer(), fullPrices())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCalculate_Degraded measures the fallback path with no player state
func BenchmarkCalculate_Degraded(b *testing.B) {
	var missing *domain.PlayerState
	calc, err := calculator.New(calculator.DefaultOptions(), missing, fullPrices())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFarmingService_Calculate includes player lookup, the cached price snapshot and sorting
func BenchmarkFarmingService_Calculate(b *testing.B) {
	prices := pricing.NewService(pricing.NewStaticSource(fullPrices()), 1024, 0)
	svc := farming.NewService(&StubPlayerRepository{state: maxedPlayer()}, prices)
	req := farming.CalculateRequest{
		Player:     "lynx titan",
		Options:    allExtras(),
		Sort:       domain.SortProfit,
		Descending: true,
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Calculate(ctx, req); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

// BenchmarkReport_Terminal measures table rendering of a full result
func BenchmarkReport_Terminal(b *testing.B) {
	calc, err := calculator.New(allExtras(), maxedPlayer(), fullPrices())
	if err != nil {
		b.Fatal(err)
	}
	result, err := calc.Calculate()
	if err != nil {
		b.Fatal(err)
	}
	formatter := report.NewFormatter(report.PlatformTerminal)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := formatter.Write(io.Discard, result, domain.SortLevel); err != nil {
			b.Fatal(err)
		}
	}
}
