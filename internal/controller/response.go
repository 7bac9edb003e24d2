package controller

import (
	"encoding/json"
	"net/http"
)

const (
	MessageUnexpected  = "An unexpected error occurred"
	MessageInvalidBody = "Invalid request body"
)

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status line is already out; nothing useful to do on encode failure
	_ = json.NewEncoder(w).Encode(response)
}

func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{StatusCode: status, Message: message})
}
