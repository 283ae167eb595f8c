package domain

// Game limits
const (
	// MaxChanceToSave is the level 99 "chance to save" constant shared by all herbs
	MaxChanceToSave = 80.0

	// HosidiusFavorMax is the favor scale's upper bound (100.0%)
	HosidiusFavorMax = 1000

	// MaxPlayerNameLength is the longest display name the game allows
	MaxPlayerNameLength = 12
)
