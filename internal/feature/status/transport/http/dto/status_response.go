// Package dto defines the HTTP wire format for the status feature.
package dto

import (
	"time"

	"market_dashboard/internal/feature/status/domain/entity"
)

// StatusResponse is the envelope for GET /api/status.
type StatusResponse struct {
	Services  []entity.ServiceHealth `json:"services"`
	CheckedAt time.Time              `json:"checkedAt"`
}

// NewStatusResponse wraps the health report.
func NewStatusResponse(services []entity.ServiceHealth) StatusResponse {
	if services == nil {
		services = []entity.ServiceHealth{}
	}
	return StatusResponse{Services: services, CheckedAt: time.Now().UTC()}
}
