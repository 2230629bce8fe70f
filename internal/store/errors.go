// ABOUTME: Sentinel errors forming the store error taxonomy.
// ABOUTME: Callers classify with errors.Is; nothing else escapes the boundary.
package store

import "errors"

// Sentinel kinds for store errors.
var (
	// ErrNotFound covers missing documents and subcollections that do not
	// exist yet.
	ErrNotFound = errors.New("document not found")

	// ErrPermissionDenied marks authorization failures; surfaced to users as
	// an actionable message distinct from generic failure.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnavailable covers transport, serialization, and any other backend
	// failure. Writes that hit it fall back to the local cache.
	ErrUnavailable = errors.New("backend unavailable")
)
