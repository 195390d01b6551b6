package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for all endpoints. Details carries the
// internal cause and is present only on 500-class failures; client-caused
// errors (400, 409) return the message alone.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes the standard success body {"success":true,"message":...}.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, map[string]any{
		"success": true,
		"message": message,
	})
}

// WriteError writes a client-facing error with no details.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteErrorDetails writes a 500-class error: a generic client-facing message
// plus the internal cause in details.
func WriteErrorDetails(w http.ResponseWriter, statusCode int, message, details string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Details: details})
}

// MethodNotAllowed is the fallback handler registered on each route's bare
// path so unsupported methods get the JSON error body instead of the
// ServeMux plain-text 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
