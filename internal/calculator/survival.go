package calculator

import (
	"fmt"
	"math"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/utils"
)

// Survival is the outcome of the disease model for one planting
type Survival struct {
	// Chance is the probability the crop reaches maturity
	Chance float64
	// ResurrectAttemptChance is the probability a Resurrect Crops cast was needed
	ResurrectAttemptChance float64
}

// DiseaseChance returns the per-cycle disease probability. The numerator is
// floored and never drops below 1.
func DiseaseChance(compost domain.Compost, anima domain.AnimaPlant) float64 {
	numerator := math.Floor(compost.Info().BaseDiseaseChance * anima.DiseaseChanceModifier())
	if numerator < 1 {
		numerator = 1
	}
	return numerator / DiseaseDenominator
}

// SurvivalChance is the probability of no disease over every growth cycle
func SurvivalChance(diseaseChance float64, diseaseFree bool) (float64, error) {
	if diseaseFree {
		return 1.0, nil
	}
	return utils.BinomialPMF(diseaseChance, DiseaseCycles, 0)
}

// SurvivalChanceWithResurrect adds the "diseased once, then resurrected"
// branch to natural survival. Resurrect Crops can only be cast once per
// planting, so a second disease kills the crop.
func SurvivalChanceWithResurrect(diseaseChance float64, diseaseFree bool, resurrectChance float64) (Survival, error) {
	if diseaseFree {
		return Survival{Chance: 1.0}, nil
	}
	if math.IsNaN(resurrectChance) || resurrectChance < 0 || resurrectChance > 1 {
		return Survival{}, fmt.Errorf("%w: resurrect chance %v outside [0, 1]", domain.ErrInvalidArgument, resurrectChance)
	}

	natural, err := utils.BinomialPMF(diseaseChance, DiseaseCycles, 0)
	if err != nil {
		return Survival{}, err
	}
	diseasedOnce, err := utils.BinomialPMF(diseaseChance, DiseaseCycles, 1)
	if err != nil {
		return Survival{}, err
	}

	return Survival{
		Chance:                 natural + diseasedOnce*resurrectChance,
		ResurrectAttemptChance: 1 - natural,
	}, nil
}

// ResurrectSuccessChance is the chance a Resurrect Crops cast succeeds at the
// given Magic level: 0 below the requirement, then linear up to level 99.
func ResurrectSuccessChance(magicLevel int) (float64, error) {
	if magicLevel > ResurrectMaxMagicLevel {
		return 0, fmt.Errorf("%w: magic level %d above %d", domain.ErrInvalidArgument, magicLevel, ResurrectMaxMagicLevel)
	}
	if magicLevel < ResurrectMinMagicLevel {
		return 0, nil
	}
	return utils.LinearInterpolate(
		float64(magicLevel),
		ResurrectMinMagicLevel, ResurrectMaxMagicLevel,
		ResurrectMinChance, ResurrectMaxChance,
	)
}
