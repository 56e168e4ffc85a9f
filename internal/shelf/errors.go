package shelf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/SmartShelf_Go/internal/domain"
)

// ValidationError carries field-level messages for a rejected input. No I/O
// was performed when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return fmt.Sprintf("%s: %s", domain.ErrMsgInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

func newValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// CascadeError reports a container delete that did not fully complete.
// Both steps were attempted and the projections reflect the backend.
type CascadeError struct {
	ContainerID      string
	ItemsDeleted     int
	ItemsFailed      int
	ItemsErr         error
	ContainerDeleted bool
	ContainerErr     error
}

func (e *CascadeError) Error() string {
	var parts []string
	if e.ItemsErr != nil {
		parts = append(parts, fmt.Sprintf("items: %v", e.ItemsErr))
	}
	if e.ContainerErr != nil {
		parts = append(parts, fmt.Sprintf("container: %v", e.ContainerErr))
	}
	return fmt.Sprintf("%s for %s (%d items deleted, %d failed): %s",
		domain.ErrMsgCascadeIncomplete, e.ContainerID, e.ItemsDeleted, e.ItemsFailed, strings.Join(parts, "; "))
}

func (e *CascadeError) Unwrap() []error {
	errs := []error{domain.ErrCascadeIncomplete}
	if e.ItemsErr != nil {
		errs = append(errs, e.ItemsErr)
	}
	if e.ContainerErr != nil {
		errs = append(errs, e.ContainerErr)
	}
	return errs
}
