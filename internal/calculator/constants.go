package calculator

// Disease model
const (
	// DiseaseCycles is the number of growth stages that roll for disease.
	// The first stage (planted to growing) never rolls.
	DiseaseCycles = 3

	// DiseaseDenominator is the denominator of the per-cycle disease chance
	DiseaseDenominator = 128.0
)

// Yield model
const (
	// ChanceToSaveDenominator is the denominator of the "chance to save" roll
	ChanceToSaveDenominator = 256.0

	// ChanceToSaveLevelSpan is the number of level steps the base chance is interpolated over
	ChanceToSaveLevelSpan = 98.0
)

// Resurrect Crops
const (
	ResurrectMinMagicLevel = 78
	ResurrectMaxMagicLevel = 99
	ResurrectMinChance     = 0.50
	ResurrectMaxChance     = 0.75
)

// Item "chance to save" bonuses
const (
	MagicSecateursBonus = 0.10
	FarmingCapeBonus    = 0.05
)

// Patch bonuses
const (
	// HosidiusFavorThreshold is the favor (out of 1000) at which Hosidius becomes disease-free
	HosidiusFavorThreshold = 500

	CatherbyMediumBonus = 0.05
	CatherbyHardBonus   = 0.10
	CatherbyEliteBonus  = 0.15

	KourendHardBonus = 0.05

	FaladorXPBonus = 0.10
)

// Warning formats
const (
	WarnUnresolvedSkill = "could not read %s level, assuming %d"
	WarnUnresolvedFlag  = "could not read %s, assuming %d"
)
