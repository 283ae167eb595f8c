package calculator

import "github.com/osse101/HerbFarmCalc_Go/internal/domain"

// PriceSource returns the current price of an item in coins.
// It must return 0 for domain.NoItem.
type PriceSource interface {
	Price(item domain.ItemID) int
}

// PlantingOutcome is the probabilistic outcome of one herb in one patch
type PlantingOutcome struct {
	Survival      Survival
	ExpectedYield float64
}

// ExpectedXP is compost XP plus plant XP for surviving crops plus harvest XP
// per expected herb, scaled by the patch XP bonus.
// Compost and plant XP are both assumed to be granted at planting time.
func ExpectedXP(herb domain.Herb, compost domain.Compost, outcome PlantingOutcome, xpBonus float64) float64 {
	info := herb.Info()
	base := compost.Info().XP +
		info.PlantXP*outcome.Survival.Chance +
		info.HarvestXP*outcome.ExpectedYield
	return base * (1 + xpBonus)
}

// ResurrectCastCost is the price of the runes for one Resurrect Crops cast
func ResurrectCastCost(prices PriceSource) float64 {
	total := 0
	for _, reagent := range domain.ResurrectCropsRunes {
		total += prices.Price(reagent.Item) * reagent.Quantity
	}
	return float64(total)
}

// PlantingCost is compost plus seed plus the expected Resurrect Crops rune cost.
// The bottomless compost bucket applies two doses per bucket, halving the compost cost.
func PlantingCost(herb domain.Herb, opts Options, outcome PlantingOutcome, prices PriceSource) float64 {
	compostCost := float64(prices.Price(opts.Compost.Info().Item))
	if opts.BottomlessBucket {
		compostCost /= 2
	}
	cost := compostCost + float64(prices.Price(herb.Info().SeedItem))
	if opts.ResurrectCrops {
		cost += ResurrectCastCost(prices) * outcome.Survival.ResurrectAttemptChance
	}
	return cost
}

// HarvestRevenue is the grimy herb price times the expected yield
func HarvestRevenue(herb domain.Herb, outcome PlantingOutcome, prices PriceSource) float64 {
	return float64(prices.Price(herb.Info().GrimyItem)) * outcome.ExpectedYield
}
