package router

import (
	newshandler "market_dashboard/internal/feature/news/transport/handler"
	quoteshandler "market_dashboard/internal/feature/quotes/transport/handler"
	researchhandler "market_dashboard/internal/feature/research/transport/handler"
	statushandler "market_dashboard/internal/feature/status/transport/handler"
	"market_dashboard/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all HTTP routes. Every endpoint is read-only and public,
// so the dashboard frontend can call from any origin.
func NewRouter(news *newshandler.NewsHandler, quotes *quoteshandler.QuotesHandler,
	research *researchhandler.ResearchHandler, status *statushandler.StatusHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Liveness probe.
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/news", news.Get)
		api.GET("/quotes", quotes.Get)
		api.GET("/research", research.Get)
		api.GET("/status", status.Get)
	}

	return r
}
