package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. None of the
// read-model transforms ever return these for missing data: a missing
// reference resolves to a placeholder, a missing theme to the default, a
// failed partition to an empty list. These sentinels cover the boundaries
// where an error is genuinely actionable.

var (
	// Source errors
	ErrSourceUnavailable = errors.New("data repo is unreachable")
	ErrMalformedDocument = errors.New("document did not decode to the expected shape")

	// Snapshot errors
	ErrNoSnapshot = errors.New("no snapshot available — daemon has not completed a refresh")

	// Preference store errors
	ErrPrefNotFound = errors.New("preference key not set")
)
