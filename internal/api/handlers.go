package api

import (
	"errors"
	"strconv"
	"time"

	"StockDash/internal/calculator"
	"StockDash/internal/catalog"
	"StockDash/internal/collector"
	"StockDash/internal/generator"
	"StockDash/internal/model"

	"github.com/gofiber/fiber/v2"
)

// StockHandler serves catalog, chart, stats and prediction endpoints.
type StockHandler struct {
	collector *collector.Collector
}

func NewStockHandler(col *collector.Collector) *StockHandler {
	return &StockHandler{collector: col}
}

// ListCompanies handles GET /api/companies?q=
func (h *StockHandler) ListCompanies(c *fiber.Ctx) error {
	return c.JSON(catalog.Search(h.collector.Companies, c.Query("q")))
}

// GetChart handles GET /api/stocks/:ticker?range=6M
func (h *StockHandler) GetChart(c *fiber.Ctx) error {
	key, err := collector.ParseRange(c.Query("range"))
	if err != nil {
		return badRequest(c, "Invalid range", err)
	}

	d, err := h.collector.Collect(c.Params("ticker"))
	if err != nil {
		return collectError(c, err)
	}

	asOf := d.Stats.Last.Date
	visible, err := collector.SliceRange(d.Series, key, asOf)
	if err != nil {
		return badRequest(c, "Invalid range", err)
	}

	offset := len(d.Series) - len(visible)
	points := make([]ChartPoint, len(visible))
	for i, p := range visible {
		points[i] = ChartPoint{
			OHLCV:  p,
			SMA50:  nullable(at(d.SMA50, offset+i)),
			SMA200: nullable(at(d.SMA200, offset+i)),
		}
	}

	return c.JSON(ChartResponse{
		Ticker:    d.Company.Ticker,
		Name:      d.Company.Name,
		Range:     string(key),
		AsOf:      asOf,
		Points:    points,
		Predicted: d.Predicted,
		NextDate:  nextDate(asOf),
		Lookback:  d.Lookback,
		DailyRSI:  d.DailyRSI,
	})
}

// GetStats handles GET /api/stocks/:ticker/stats
func (h *StockHandler) GetStats(c *fiber.Ctx) error {
	company, series, err := h.series(c)
	if err != nil {
		return collectError(c, err)
	}
	stats, err := calculator.CalculateStats(series)
	if err != nil {
		return collectError(c, err)
	}
	return c.JSON(StatsResponse{Ticker: company.Ticker, StatsSnapshot: stats})
}

// GetPrediction handles GET /api/stocks/:ticker/prediction?lookback=60
func (h *StockHandler) GetPrediction(c *fiber.Ctx) error {
	lookback := h.collector.Options.Lookback
	if v := c.Query("lookback"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			return badRequest(c, "Invalid lookback", errors.New("lookback must be an integer of at least 2"))
		}
		lookback = n
	}

	company, series, err := h.series(c)
	if err != nil {
		return collectError(c, err)
	}
	var asOf string
	if len(series) > 0 {
		asOf = series[len(series)-1].Date
	}
	return c.JSON(PredictionResponse{
		Ticker:    company.Ticker,
		Lookback:  lookback,
		Predicted: calculator.PredictNextClose(series, lookback),
		NextDate:  nextDate(asOf),
	})
}

func (h *StockHandler) series(c *fiber.Ctx) (model.Company, []model.OHLCV, error) {
	company, err := h.collector.Company(c.Params("ticker"))
	if err != nil {
		return model.Company{}, nil, err
	}
	series, err := h.collector.Series(company.Ticker, h.collector.Options.Days)
	if err != nil {
		return model.Company{}, nil, err
	}
	return company, series, nil
}

// nextDate returns the calendar day after day, or "" if day does not parse.
func nextDate(day string) string {
	t, err := time.Parse(generator.DateLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(generator.DateLayout)
}

func badRequest(c *fiber.Ctx, msg string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   msg,
		Message: err.Error(),
		Code:    fiber.StatusBadRequest,
	})
}

func collectError(c *fiber.Ctx, err error) error {
	if errors.Is(err, collector.ErrUnknownTicker) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "Ticker not found",
			Message: err.Error(),
			Code:    fiber.StatusNotFound,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "Failed to build series",
		Message: err.Error(),
		Code:    fiber.StatusInternalServerError,
	})
}

// CustomErrorHandler handles Fiber errors
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "Request failed",
		Message: err.Error(),
		Code:    code,
	})
}
