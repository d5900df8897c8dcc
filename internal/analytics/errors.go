package analytics

import "errors"

var (
	// ErrInvalidScope means the caller asked for data outside what
	// their role grants, e.g. a student querying another student.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrDataUnavailable means the fact store could not be read. The
	// engine never serves partial or stale numbers in that case.
	ErrDataUnavailable = errors.New("analytics data unavailable")
)
