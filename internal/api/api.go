// Package api holds the response envelope shared by all endpoints and the
// translation of internal errors to HTTP responses.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the JSON envelope for every non-plain-text response.
type Response struct {
	Error   bool        `json:"error"`
	Payload interface{} `json:"payload"`
}

// Error is a client-visible failure: a status code plus the payload string
// surfaced to the caller. Anything else that reaches WriteError becomes a
// generic 500.
type Error struct {
	Status  int
	Payload string
}

func (e *Error) Error() string {
	return e.Payload
}

func NewError(status int, payload string) *Error {
	return &Error{Status: status, Payload: payload}
}

// WriteSuccess writes a {error:false, payload:...} response.
func WriteSuccess(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, Response{Error: false, Payload: payload})
}

// WriteError translates err into an HTTP response. *Error values keep their
// status and payload; everything else is reported as a generic 500 so
// internal details never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Status, Response{Error: true, Payload: apiErr.Payload})
		return
	}
	writeJSON(w, http.StatusInternalServerError, Response{Error: true, Payload: "Something went wrong"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
