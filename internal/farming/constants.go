package farming

// Warning messages added to degraded results
const (
	WarnNoPlayer          = "no player given, using default signals"
	WarnPlayerNotFound    = "player %q not found, using default signals"
	WarnPricesUnavailable = "prices unavailable, missing items are priced at 0: %v"
)

// Log messages
const (
	LogMsgCalculate         = "Calculating herb results"
	LogMsgCalculateDone     = "Herb calculation complete"
	LogMsgPlayerLookupFail  = "Player lookup failed, running degraded"
	LogMsgPriceSnapshotFail = "Price snapshot incomplete, running degraded"
	LogMsgPlayerSaved       = "Player state saved"
	LogMsgPlayerDeleted     = "Player state deleted"
)
