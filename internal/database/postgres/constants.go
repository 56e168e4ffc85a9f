package postgres

import "github.com/osse101/SmartShelf_Go/internal/domain"

// PostgreSQL Error Codes
const (
	// PgErrorCodeForeignKeyViolation is raised when a container still has items
	// or an item names a missing container
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a row breaks a CHECK constraint
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages
const (
	ErrMsgFailedToQuery       = "failed to query"
	ErrMsgFailedToScanRows    = "failed to scan rows"
	ErrMsgFailedToInsert      = "failed to insert"
	ErrMsgFailedToUpdate      = "failed to update"
	ErrMsgFailedToDelete      = "failed to delete"
	ErrMsgFailedToJoin        = "failed to load joined rows"
	ErrMsgForeignKeyViolation = "referenced row is missing or still referenced"
	ErrMsgCheckViolation      = "row violates a check constraint"
)

// backendAssigned are set by the database on insert and never written by the
// executor
var backendAssigned = []string{domain.FieldID, domain.FieldCreatedAt, domain.FieldLastUpdatedAt}

// immutableOnUpdate are ignored in update patches
var immutableOnUpdate = []string{domain.FieldID, domain.FieldOwnerID, domain.FieldCreatedAt, domain.FieldLastUpdatedAt}
