package postgres

// PgErrorCodeCheckViolation is raised when a skill level or flag value breaks a CHECK constraint
const PgErrorCodeCheckViolation = "23514"

// Error Messages - Player Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit player state"
	ErrMsgFailedToGetPlayer        = "failed to get player"
	ErrMsgFailedToUpsertPlayer     = "failed to upsert player"
	ErrMsgFailedToWriteState       = "failed to write player state"
	ErrMsgFailedToDeletePlayer     = "failed to delete player"
	ErrMsgFailedToListPlayers      = "failed to list players"
)

// Log Messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
