package api

import (
	"time"

	"StockDash/internal/collector"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the HTTP application with all routes registered.
func NewApp(col *collector.Collector) *fiber.App {
	app := fiber.New(fiber.Config{
		StrictRouting:         true,
		ServerHeader:          "StockDash",
		AppName:               "StockDash",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          CustomErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	started := time.Now()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"source": col.Fetcher.Name(),
			"uptime": time.Since(started).String(),
		})
	})

	stocks := NewStockHandler(col)
	v1 := app.Group("/api")
	v1.Get("/companies", stocks.ListCompanies)
	v1.Get("/stocks/:ticker", stocks.GetChart)
	v1.Get("/stocks/:ticker/stats", stocks.GetStats)
	v1.Get("/stocks/:ticker/prediction", stocks.GetPrediction)

	return app
}
