package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ontravel-app/travel-journal-api/internal/app/accounts"
	"github.com/ontravel-app/travel-journal-api/internal/app/trips"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]any) {
	body := errorResponse{Error: errorBody{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: middleware.GetReqID(r.Context()),
	}}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeServiceError maps app-layer typed errors onto the wire envelope.
// Anything outside the closed taxonomy becomes an opaque 500; raw error text
// is logged upstream, never returned to the caller.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *accounts.Error
	if errors.As(err, &ae) {
		writeError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
		return
	}
	var te *trips.Error
	if errors.As(err, &te) {
		writeError(w, r, te.Status, te.Code, te.Message, te.Details)
		return
	}
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled service error")
	writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}
