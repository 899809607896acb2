// Package web holds the JSON response helpers and the mapping from
// service error kinds to HTTP status codes, shared by all handlers.
package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jobboard/api-service/internal/apperr"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, msg string, code int) {
	JSON(w, code, map[string]string{"error": msg})
}

// ServiceError maps a service-layer error to the matching HTTP status:
// NotFound → 404, InvalidInput → 400, Conflict → 409. Anything else is
// an unclassified store fault and becomes a 500 with a generic body.
func ServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		Error(w, err.Error(), http.StatusNotFound)
	case apperr.IsInvalidInput(err):
		Error(w, err.Error(), http.StatusBadRequest)
	case apperr.IsConflict(err):
		Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("[api-service] internal error: %v", err)
		Error(w, "database error", http.StatusInternalServerError)
	}
}
