package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/feedback"
	"github.com/osse101/SmartShelf_Go/internal/shelf"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ShelfResponse wraps every shelf payload with the projection state and the
// feedback produced while handling the request
type ShelfResponse struct {
	Data     interface{}      `json:"data,omitempty"`
	State    shelf.States     `json:"state"`
	Feedback []feedback.Event `json:"feedback"`
}

// ShelfErrorResponse is returned when a shelf operation fails
type ShelfErrorResponse struct {
	Error    string            `json:"error"`
	Fields   map[string]string `json:"fields,omitempty"`
	Feedback []feedback.Event  `json:"feedback"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondShelfError writes a failed shelf operation. Validation errors carry
// their field map.
func respondShelfError(w http.ResponseWriter, err error, events []feedback.Event) {
	if events == nil {
		events = []feedback.Event{}
	}
	status, message := mapShelfErrorToUserMessage(err)
	resp := ShelfErrorResponse{Error: message, Feedback: events}

	var verr *shelf.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	respondJSON(w, status, resp)
}

// mapShelfErrorToUserMessage converts shelf and domain errors to an HTTP status
// and a message that does not leak backend details
func mapShelfErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var cerr *shelf.CascadeError
	switch {
	case errors.As(err, &cerr):
		if cerr.ContainerDeleted {
			return http.StatusMultiStatus, ErrMsgCascadeIncomplete
		}
		return http.StatusInternalServerError, ErrMsgCascadeIncomplete
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrMissingOwner):
		return http.StatusUnauthorized, ErrMsgMissingOwner
	case errors.Is(err, domain.ErrShelfItemNotFound):
		return http.StatusNotFound, ErrMsgShelfItemNotFound
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
