// =============================================================================
// Receipt Generator - HTTP Error Responses
// =============================================================================

package transport

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`

	// Details carries individual catalog validation messages when the
	// request's item table is invalid.
	Details []string `json:"details,omitempty"`
}

// writeError writes an ErrorResponse with the given status code.
// Failed requests never carry partial generation output.
func writeError(w http.ResponseWriter, status int, message string, details ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Details: details,
	})
}
