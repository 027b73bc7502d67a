package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_dashboard/internal/feature/status/domain/entity"
	"market_dashboard/internal/feature/status/transport/http/dto"
)

// StatusUsecase is the health-report flow this handler fronts.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StatusUsecase interface {
	CheckAll(ctx context.Context) []entity.ServiceHealth
}

// StatusHandler serves the provider health report.
type StatusHandler struct {
	uc StatusUsecase
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(uc StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Get handles GET /api/status. The report is always fresh, so clients must
// not cache it either.
func (h *StatusHandler) Get(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.NewStatusResponse(h.uc.CheckAll(c.Request.Context())))
}
