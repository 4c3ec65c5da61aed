package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the HTTP response body. Every
// handler in this service, success and error responses alike, goes through it
// so that clients always receive a JSON body.
//
// The "Content-Type" header is set to "application/json" and statusCode is
// written before the body. When marshaling fails the client gets a plain
// 500 instead and the wrapped error is returned to the caller.
//
// Parameters:
//
//	w          - the HTTP response writer
//	data       - any JSON-serializable value (response DTO, error body, nil)
//	statusCode - status code for the response (e.g. http.StatusCreated)
//
// Returns:
//
//	int   - number of body bytes written
//	error - non-nil only when marshaling fails
//
// Example usage:
//
//	WriteJSON(w, loginResponse{Token: token.SignedString}, http.StatusOK)
//	WriteJSON(w, errorResponse{Error: "Invalid credentials"}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
