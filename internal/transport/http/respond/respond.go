package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/teraskopi54/pos/internal/service/models/apperrors"
)

// messageBody is the JSON shape every failure response carries.
type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

// Message writes a `{"message": ...}` body with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}

// Error maps a service error onto the HTTP status for its taxonomy class
// and writes it as a `{"message": ...}` body.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		Message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		Message(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		Message(w, http.StatusServiceUnavailable, err.Error())
	default:
		Message(w, http.StatusInternalServerError, err.Error())
	}
}
