package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Error kinds exposed in the JSON error body. Unclassified failures fall
// through to errKindInternal.
const (
	errKindNotFound   = "NotFound"
	errKindValidation = "Validation"
	errKindAuth       = "Auth"
	errKindInternal   = "InternalServerError"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

// respondError writes the uniform error body for the given kind.
func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, errorBody{Error: kind, Message: message})
}

// decodeJSON decodes the request body into dst. Type mismatches and malformed
// bodies surface as decode errors for the caller to classify.
func decodeJSON(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(dst)
}
