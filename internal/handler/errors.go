package handler

// Generic HTTP error messages for client responses.
// Internal error details are never returned to clients.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgNameMismatch          = "Player name in body does not match the URL"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgPlayerNotFoundError    = "Player not found"
	ErrMsgNoPatchesSelectedError = "Select at least one herb patch"
	ErrMsgUnknownHerbError       = "Unknown herb"
	ErrMsgUnknownPatchError      = "Unknown herb patch"
	ErrMsgUnknownCompostError    = "Unknown compost"
	ErrMsgUnknownAnimaPlantError = "Unknown anima plant"
	ErrMsgUnknownSortError       = "Unknown sort criteria. Valid options: alphabetical, level, profit, yield, xp"
	ErrMsgUnknownSkillError      = "Unknown skill. Valid options: farming, magic"
	ErrMsgUnknownFlagError       = "Unknown flag"
	ErrMsgUnknownDiaryTierError  = "Unknown diary tier"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgPriceUnavailableError  = "Prices are temporarily unavailable. Please try again later."
	ErrMsgCalculationFailedError = "Calculation failed"
	ErrMsgUnavailableError       = "Server is temporarily unavailable. Please try again later."
)

// Success messages for API responses
const (
	MsgPlayerSaved       = "Player saved"
	MsgPlayerDeleted     = "Player deleted"
	MsgPricesInvalidated = "Price cache cleared"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"

	HealthCheckDatabase = "database"
	HealthCheckPrices   = "prices"
)
