package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingOwner          = "Missing X-Owner-ID header"
	ErrMsgInvalidOwner          = "Invalid X-Owner-ID header"

	ErrMsgSessionLoadFailed = "Failed to load your shelf"
	ErrMsgNoSession         = "No open session"
)

// User-facing messages for shelf errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgShelfItemNotFound  = "Shelf item not found"
	ErrMsgCascadeIncomplete  = "Container could not be removed completely"
)

// Success messages for API responses
const (
	MsgSignedOut = "Signed out"
)

// HeaderOwnerID carries the signed-in owner for every shelf route
const HeaderOwnerID = "X-Owner-ID"
