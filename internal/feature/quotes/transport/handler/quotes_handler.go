package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"market_dashboard/internal/feature/quotes/domain/entity"
	"market_dashboard/internal/feature/quotes/transport/http/dto"
)

// QuotesUsecase is the batch quote flow this handler fronts.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type QuotesUsecase interface {
	GetQuotes(ctx context.Context, requested []string) ([]entity.Quote, error)
}

// QuotesHandler serves batch quote lookups.
type QuotesHandler struct {
	uc QuotesUsecase
}

// NewQuotesHandler creates a QuotesHandler.
func NewQuotesHandler(uc QuotesUsecase) *QuotesHandler {
	return &QuotesHandler{uc: uc}
}

// Get handles GET /api/quotes. Symbols come as a comma-separated "symbols"
// query parameter; no parameter means the default basket. Dashboards prefer a
// thin result over an error page, so a failed batch degrades to an empty 200.
func (h *QuotesHandler) Get(c *gin.Context) {
	quotes, err := h.uc.GetQuotes(c.Request.Context(), splitCSV(c.Query("symbols")))
	if err != nil {
		slog.Error("quote batch failed", "error", err)
		quotes = []entity.Quote{}
	}
	c.JSON(http.StatusOK, dto.NewQuotesResponse(quotes))
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
