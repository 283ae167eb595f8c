package calculator

import (
	"fmt"
	"math"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// YieldBonuses are the independent "chance to save" bonus fractions.
// They multiply together rather than add.
type YieldBonuses struct {
	Items float64
	Patch float64
	Anima float64
}

// ChanceToSave returns the probability one harvest does not use up a life.
// See https://oldschool.runescape.wiki/w/Farming#Variable_crop_yield. Each floor
// is its own rounding step; regrouping them changes results at level boundaries.
func ChanceToSave(minChanceToSave float64, farmingLevel int, bonuses YieldBonuses) (float64, error) {
	if farmingLevel < domain.MinSkillLevel || farmingLevel > domain.MaxSkillLevel {
		return 0, fmt.Errorf("%w: farming level %d outside [%d, %d]",
			domain.ErrInvalidArgument, farmingLevel, domain.MinSkillLevel, domain.MaxSkillLevel)
	}

	level := float64(farmingLevel)
	base := math.Floor(minChanceToSave*(99-level)/ChanceToSaveLevelSpan +
		domain.MaxChanceToSave*(level-1)/ChanceToSaveLevelSpan)
	boosted := math.Floor(
		math.Floor(base*(1+bonuses.Items)*(1+bonuses.Patch)*(1+bonuses.Anima)+1),
	)
	return boosted / ChanceToSaveDenominator, nil
}

// ExpectedHarvestsIfMatured is the expected number of harvests before the
// crop's lives run out: the mean number of Bernoulli trials to reach
// `lives` failures, where a failure is a harvest that does not save a life.
func ExpectedHarvestsIfMatured(lives int, chanceToSave float64) (float64, error) {
	if lives < 1 {
		return 0, fmt.Errorf("%w: harvest lives %d", domain.ErrInvalidArgument, lives)
	}
	if math.IsNaN(chanceToSave) || chanceToSave < 0 || chanceToSave >= 1 {
		return 0, fmt.Errorf("%w: chance to save %v outside [0, 1)", domain.ErrInvalidArgument, chanceToSave)
	}
	return float64(lives) / (1 - chanceToSave), nil
}
