package matching

import "errors"

// Configuration errors returned before any matching work starts.
var (
	ErrNoCandidatePool = errors.New("no candidate pool configured")
	ErrNoJobPool       = errors.New("no job pool configured")
)
