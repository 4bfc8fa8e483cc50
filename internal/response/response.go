// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the shape of every error response. Error carries a stable
// machine-readable code; Message is the human-readable explanation.
type ErrorBody struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"   example:"invalid_environment"`
	Message string `json:"message" example:"environment must be one of: \"production\", \"development\""`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Fail writes an error response with the given status, code and message.
func Fail(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Success: false, Error: code, Message: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, code, message string) {
	Fail(w, http.StatusBadRequest, code, message)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	Fail(w, http.StatusNotFound, "not_found", message)
}

// Internal writes a 500 response. The message must stay generic — failure
// detail belongs in the server log, not on the wire.
func Internal(w http.ResponseWriter, message string) {
	Fail(w, http.StatusInternalServerError, "internal_error", message)
}
