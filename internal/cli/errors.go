// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts and agents.
const (
	// Site errors
	ErrSiteNotFound     = "SITE_NOT_FOUND"
	ErrSiteNotSpecified = "SITE_NOT_SPECIFIED"
	ErrConfigInvalid    = "CONFIG_INVALID"

	// Content errors
	ErrContentNotFound  = "CONTENT_NOT_FOUND"
	ErrPostNotFound     = "POST_NOT_FOUND"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrSlugCollision    = "SLUG_COLLISION"

	// Index errors
	ErrIndexError  = "INDEX_ERROR"
	ErrIndexLocked = "INDEX_LOCKED"

	// File errors
	ErrFileReadError = "FILE_READ_ERROR"
	ErrRenderError   = "RENDER_ERROR"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnInvalidFrontmatter = "INVALID_FRONTMATTER"
	WarnSkippedPath        = "SKIPPED_PATH"
)
