package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_dashboard/internal/api"
	"market_dashboard/internal/feature/research/domain/entity"
	"market_dashboard/internal/feature/research/transport/http/dto"
	"market_dashboard/internal/feature/research/usecase"
)

// ResearchUsecase is the bundle-assembly flow this handler fronts.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ResearchUsecase interface {
	GetResearch(ctx context.Context, rawSymbol string) (*entity.Bundle, error)
}

// ResearchHandler serves per-symbol research bundles.
type ResearchHandler struct {
	uc ResearchUsecase
}

// NewResearchHandler creates a ResearchHandler.
func NewResearchHandler(uc ResearchUsecase) *ResearchHandler {
	return &ResearchHandler{uc: uc}
}

// Get handles GET /api/research?symbol=AAPL. An invalid or missing symbol is
// a 400; everything else the usecase absorbs into a partial bundle, so any
// other error here is a genuine server fault.
func (h *ResearchHandler) Get(c *gin.Context) {
	bundle, err := h.uc.GetResearch(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSymbol) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid or missing symbol"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load research"})
		return
	}
	c.JSON(http.StatusOK, dto.NewResearchResponse(bundle))
}
