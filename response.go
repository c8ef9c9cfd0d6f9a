package main

import (
	"encoding/json"
	"net/http"
)

// APIResponse handles consistent header setting and JSON responses.
type APIResponse struct {
	w http.ResponseWriter
	r *http.Request
}

// Respond creates a response helper for the current request
func Respond(w http.ResponseWriter, r *http.Request) *APIResponse {
	return &APIResponse{w: w, r: r}
}

// JSON writes headers and encodes data as JSON (200 OK)
func (a *APIResponse) JSON(data interface{}) error {
	a.w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(a.w).Encode(data)
}

// Error writes headers, sets status code, and encodes error response
func (a *APIResponse) Error(statusCode int, data interface{}) error {
	a.w.Header().Set("Content-Type", "application/json")
	a.w.WriteHeader(statusCode)
	return json.NewEncoder(a.w).Encode(data)
}

// Raw writes a pre-encoded JSON body without touching it
func (a *APIResponse) Raw(body []byte) error {
	a.w.Header().Set("Content-Type", "application/json")
	_, err := a.w.Write(body)
	return err
}
