package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"market_dashboard/internal/api"
	"market_dashboard/internal/feature/news/domain/entity"
	"market_dashboard/internal/feature/news/transport/http/dto"
)

// NewsUsecase is the aggregation flow this handler fronts.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type NewsUsecase interface {
	GetNews(ctx context.Context, sectorIDs []string) ([]entity.Article, error)
}

// NewsHandler serves the merged news feed.
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// Get handles GET /api/news. Sector ids come as a comma-separated "sectors"
// query parameter; no parameter means the unfiltered feed.
func (h *NewsHandler) Get(c *gin.Context) {
	articles, err := h.uc.GetNews(c.Request.Context(), splitCSV(c.Query("sectors")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load news"})
		return
	}
	c.JSON(http.StatusOK, dto.NewNewsResponse(articles))
}

// splitCSV splits a comma-separated query value, trimming whitespace and
// dropping empty segments.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
