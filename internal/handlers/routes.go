package handlers

import (
	"fintrack/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// RegisterRoutes wires all handlers into the Echo instance, including the
// shared middleware stack, the health endpoint and the Prometheus scrape
// endpoint.
func RegisterRoutes(e *echo.Echo, db *gorm.DB, statementHandler *StatementHandler) {
	e.Validator = NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())

	healthHandler := NewHealthCheckHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	statements := api.Group("/statements")
	statements.GET("", statementHandler.GetStatements)
	statements.GET("/statistics", statementHandler.GetStatementStatistics)
	statements.GET("/comparison", statementHandler.GetStatementComparison)
	statements.POST("/validate", statementHandler.ValidateStatementDraft)
}
