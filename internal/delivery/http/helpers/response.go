package helpers

import (
	"encoding/json"
	"net/http"
)

// Response is the common envelope embedded in every API response body.
// Success bodies carry `success: true` plus the payload fields of the
// embedding struct; error bodies carry `success: false`, a message, and
// optionally an internal error code.
// swagger:model Response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// OK is the plain success envelope for responses without a payload.
func OK() Response {
	return Response{Success: true}
}

// WriteJSON writes v as the JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an error envelope with the given message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Response{Success: false, Message: message})
}

// WriteErrorCode writes an error envelope carrying an internal error code.
func WriteErrorCode(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, Response{Success: false, Message: message, Code: code})
}
