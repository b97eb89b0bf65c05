// internal/adapters/in/http/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"storefront/internal/domain/apperr"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[handler] WARN: encode response failed: %v", err)
	}
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFailure maps the error taxonomy onto HTTP statuses. Every failure
// carries exactly one user-facing message.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsKind(err, apperr.KindValidation):
		writeErr(w, http.StatusBadRequest, apperr.MessageOf(err))
	case apperr.IsKind(err, apperr.KindPrecondition):
		writeErr(w, http.StatusConflict, apperr.MessageOf(err))
	case apperr.IsKind(err, apperr.KindUnauthenticated):
		writeErr(w, http.StatusUnauthorized, apperr.MessageOf(err))
	case errors.Is(err, orderdom.ErrNotFound), errors.Is(err, productdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not found")
	case apperr.IsKind(err, apperr.KindRemote):
		writeErr(w, http.StatusBadGateway, apperr.MessageOf(err))
	default:
		writeErr(w, http.StatusInternalServerError, apperr.MessageOf(err))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
