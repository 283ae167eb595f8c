package profile

// FileExtension marks profile files inside a profile directory
const FileExtension = ".yaml"

// Error messages
const (
	ErrMsgReadDir      = "failed to read profile directory"
	ErrMsgReadFile     = "failed to read file"
	ErrMsgParseYAML    = "failed to parse YAML"
	ErrMsgLoadProfile  = "failed to load profile %s"
	ErrMsgInvalidSort  = "invalid sort"
	ErrMsgInvalidState = "invalid player"
)
