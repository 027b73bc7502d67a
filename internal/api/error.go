// Package api defines response shapes shared across transport handlers.
package api

// ErrorResponse is the JSON body returned for request-level errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
