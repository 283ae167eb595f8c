package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

func TestResurrectCastCost(t *testing.T) {
	// 25 earth + 8 blood + 12 nature + 8 soul
	assert.InDelta(t, 25*4.0+8*200.0+12*100.0+8*150.0, ResurrectCastCost(testPrices()), 1e-9)
	assert.Zero(t, ResurrectCastCost(domain.PriceTable{}))
}

func TestExpectedXP(t *testing.T) {
	outcome := PlantingOutcome{Survival: Survival{Chance: 0.5}, ExpectedYield: 4}

	// 18 + 11*0.5 + 12.5*4
	assert.InDelta(t, 73.5, ExpectedXP(domain.HerbGuam, domain.CompostNormal, outcome, 0), 1e-9)
	assert.InDelta(t, 73.5*1.1, ExpectedXP(domain.HerbGuam, domain.CompostNormal, outcome, 0.1), 1e-9)

	dead := PlantingOutcome{}
	assert.InDelta(t, 18.0, ExpectedXP(domain.HerbGuam, domain.CompostNormal, dead, 0), 1e-9)
}

func TestPlantingCost(t *testing.T) {
	prices := testPrices()
	outcome := PlantingOutcome{Survival: Survival{Chance: 0.9, ResurrectAttemptChance: 0.2}}

	tests := []struct {
		name     string
		opts     Options
		expected float64
	}{
		{"seed only", Options{Compost: domain.CompostNone}, 20},
		{"with supercompost", Options{Compost: domain.CompostSuper}, 320},
		{"bottomless bucket", Options{Compost: domain.CompostSuper, BottomlessBucket: true}, 170},
		{"resurrect weighted by attempt chance", Options{Compost: domain.CompostNone, ResurrectCrops: true}, 20 + 0.2*4100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PlantingCost(domain.HerbGuam, tt.opts, outcome, prices), 1e-9)
		})
	}
}

func TestHarvestRevenue(t *testing.T) {
	outcome := PlantingOutcome{ExpectedYield: 7.5}
	assert.InDelta(t, 7000*7.5, HarvestRevenue(domain.HerbRanarr, outcome, testPrices()), 1e-9)
	assert.Zero(t, HarvestRevenue(domain.HerbTorstol, outcome, testPrices()))
}
