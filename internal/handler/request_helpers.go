package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/SmartShelf_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req AddContainerRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add container"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type ownerHeader struct {
	OwnerID string `json:"owner_id" validate:"notblank,max=128,printascii"`
}

// ownerFromRequest reads and checks the owner header. If ok is false, the
// response has already been written.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	h := ownerHeader{OwnerID: r.Header.Get(HeaderOwnerID)}
	if h.OwnerID == "" {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingOwner)
		return "", false
	}
	if err := GetValidator().ValidateStruct(h); err != nil {
		logger.FromContext(r.Context()).Warn("Rejected owner header", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidOwner)
		return "", false
	}
	return h.OwnerID, true
}
