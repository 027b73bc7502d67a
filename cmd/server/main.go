package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"market_dashboard/internal/app/di"
	"market_dashboard/internal/app/router"
	newsentity "market_dashboard/internal/feature/news/domain/entity"
	newshandler "market_dashboard/internal/feature/news/transport/handler"
	newsusecase "market_dashboard/internal/feature/news/usecase"
	quotesentity "market_dashboard/internal/feature/quotes/domain/entity"
	quoteshandler "market_dashboard/internal/feature/quotes/transport/handler"
	quotesusecase "market_dashboard/internal/feature/quotes/usecase"
	researchentity "market_dashboard/internal/feature/research/domain/entity"
	researchhandler "market_dashboard/internal/feature/research/transport/handler"
	researchusecase "market_dashboard/internal/feature/research/usecase"
	statushandler "market_dashboard/internal/feature/status/transport/handler"
	statususecase "market_dashboard/internal/feature/status/usecase"
	"market_dashboard/internal/platform/cache"
)

func main() {
	// Local development reads keys from .env; in deployment the environment
	// is already populated and the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment as-is.")
	}

	// Provider clients
	market := di.NewMarket()
	feed := di.NewFeedSource()
	search := di.NewKeywordSearch()
	company := di.NewCompanyData()
	fundamentals := di.NewFundamentals()

	// Usecase
	newsUC := newsusecase.NewNewsUsecase(feed, search,
		cache.New[[]newsentity.Article](newsusecase.CacheTTL))
	quotesUC := quotesusecase.NewQuotesUsecase(market,
		cache.New[[]quotesentity.Quote](quotesusecase.CacheTTL))
	researchUC := researchusecase.NewResearchUsecase(market, company, fundamentals,
		cache.New[*researchentity.Bundle](researchusecase.CacheTTL))
	statusUC := statususecase.NewStatusUsecase(market, feed, search, di.KeyedIntegrations())

	// Handler
	newsH := newshandler.NewNewsHandler(newsUC)
	quotesH := quoteshandler.NewQuotesHandler(quotesUC)
	researchH := researchhandler.NewResearchHandler(researchUC)
	statusH := statushandler.NewStatusHandler(statusUC)

	r := router.NewRouter(newsH, quotesH, researchH, statusH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
