package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Calculation errors
	ErrMsgInvalidArgument   = "invalid argument"
	ErrMsgUnresolvedSignal  = "unresolved external signal"
	ErrMsgPriceUnavailable  = "price unavailable"
	ErrMsgNoPatchesSelected = "no patches selected"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Catalog lookup errors
	ErrMsgUnknownHerb         = "unknown herb"
	ErrMsgUnknownPatch        = "unknown herb patch"
	ErrMsgUnknownCompost      = "unknown compost"
	ErrMsgUnknownAnimaPlant   = "unknown anima plant"
	ErrMsgUnknownDiaryTier    = "unknown diary tier"
	ErrMsgUnknownSortCriteria = "unknown sort criteria"
	ErrMsgUnknownSkill        = "unknown skill"
	ErrMsgUnknownFlag         = "unknown flag"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidArgument is returned for out-of-domain numeric inputs (probabilities
	// outside [0, 1], negative combination arguments, empty interpolation ranges).
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// ErrUnresolvedSignal is returned by a game state provider that cannot answer.
	ErrUnresolvedSignal = errors.New(ErrMsgUnresolvedSignal)

	ErrPriceUnavailable  = errors.New(ErrMsgPriceUnavailable)
	ErrNoPatchesSelected = errors.New(ErrMsgNoPatchesSelected)

	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Catalog lookup errors
	ErrUnknownHerb         = errors.New(ErrMsgUnknownHerb)
	ErrUnknownPatch        = errors.New(ErrMsgUnknownPatch)
	ErrUnknownCompost      = errors.New(ErrMsgUnknownCompost)
	ErrUnknownAnimaPlant   = errors.New(ErrMsgUnknownAnimaPlant)
	ErrUnknownDiaryTier    = errors.New(ErrMsgUnknownDiaryTier)
	ErrUnknownSortCriteria = errors.New(ErrMsgUnknownSortCriteria)
	ErrUnknownSkill        = errors.New(ErrMsgUnknownSkill)
	ErrUnknownFlag         = errors.New(ErrMsgUnknownFlag)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
