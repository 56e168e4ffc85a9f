package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Lookup errors
	ErrMsgShelfItemNotFound = "shelf item not found"

	// Cascade errors
	ErrMsgCascadeIncomplete = "container delete did not complete"

	// Query errors
	ErrMsgUnknownCollection = "unknown collection"
	ErrMsgUnknownField      = "unknown field"
	ErrMsgUnfilteredWrite   = "update and delete require a filter"

	// Session errors
	ErrMsgMissingOwner = "owner id is required"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrShelfItemNotFound = errors.New(ErrMsgShelfItemNotFound)

	ErrCascadeIncomplete = errors.New(ErrMsgCascadeIncomplete)

	ErrUnknownCollection = errors.New(ErrMsgUnknownCollection)
	ErrUnknownField      = errors.New(ErrMsgUnknownField)
	ErrUnfilteredWrite   = errors.New(ErrMsgUnfilteredWrite)

	ErrMissingOwner = errors.New(ErrMsgMissingOwner)
)
