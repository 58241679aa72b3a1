package handler

import (
	"github.com/dafibh/casaplan/casaplan-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, quoteHandler *QuoteHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Quote routes
	quotes := api.Group("/quotes")
	quotes.POST("", quoteHandler.CreateQuote)
	quotes.POST("/report", quoteHandler.CreateQuoteReport)
}
