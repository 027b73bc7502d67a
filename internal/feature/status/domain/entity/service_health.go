// Package entity defines the domain model for the status feature.
package entity

// Health states as serialized on the wire. They map to reachable,
// unreachable, unconfigured and unimplemented respectively.
const (
	StateOK           = "ok"
	StateDown         = "down"
	StateUnconfigured = "unconfigured"
	StateUnused       = "unused"
)

// ServiceHealth is a point-in-time classification of one upstream
// integration. It is derived per request and never persisted or cached.
type ServiceHealth struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
