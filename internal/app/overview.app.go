package app

import (
	"context"
	"fmt"
	"investordash/internal/calculator"
	"investordash/internal/domain"
	"investordash/internal/fallback"
	"investordash/internal/logger"
	"investordash/internal/repository"
	"time"
)

//go:generate mockgen -source=overview.app.go -destination=mocks/mock_overview.app.go

// OverviewApp produces the investor dashboard overview. It prefers the live
// inventory source and falls back to the static dataset whenever the source
// is unconfigured or fails, so GetOverview has no error return.
type OverviewApp interface {
	GetOverview(ctx context.Context) domain.OverviewResult
}

type overviewAppHandler struct {
	InventoryRepository repository.InventoryRepository
	Fallback            fallback.Dataset
	Now                 func() time.Time
}

func NewOverviewApp(
	inventoryRepository repository.InventoryRepository,
	fallbackDataset fallback.Dataset,
) OverviewApp {
	if len(fallbackDataset.Metrics()) == 0 {
		fallbackDataset = fallback.Default()
	}
	return &overviewAppHandler{
		InventoryRepository: inventoryRepository,
		Fallback:            fallbackDataset,
		Now:                 time.Now,
	}
}

func (h *overviewAppHandler) GetOverview(ctx context.Context) (result domain.OverviewResult) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Errorw("overview panicked, serving fallback data", "panic", fmt.Sprintf("%v", r))
			result = h.mock()
		}
	}()

	if h.InventoryRepository == nil || !h.InventoryRepository.IsConfigured() {
		log.Debug("inventory source not configured, serving fallback data")
		return h.mock()
	}

	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("fetch inventory")
	raw, err := h.InventoryRepository.FetchOverviewRaw(ctx)
	endSpan()
	if err != nil {
		log.Errorw("inventory fetch failed", "error", err)
		return h.mock()
	}
	if raw == nil {
		log.Errorw("inventory fetch failed", "error", "empty response")
		return h.mock()
	}

	_, endSpan = profile.StartNewSpan("map overview")
	defer endSpan()

	return h.mapLive(*raw)
}

func (h *overviewAppHandler) mapLive(raw domain.OverviewRaw) domain.OverviewResult {
	aggregates := calculator.AggregateLineItems(raw.SalesOrders)
	if len(aggregates) == 0 {
		aggregates = nil
	}

	metrics := calculator.MapToDashboardMetrics(
		raw.SalesOrders,
		h.now(),
		calculator.MetricOptions{IncludeDividends: true},
	)
	products := calculator.MapToProductPerformance(raw.Items, aggregates)

	return domain.OverviewResult{
		Metrics:  metrics,
		Products: products,
		Source:   domain.SourceLive,
	}
}

func (h *overviewAppHandler) mock() domain.OverviewResult {
	return domain.OverviewResult{
		Metrics:  h.Fallback.Metrics(),
		Products: h.Fallback.Products(),
		Source:   domain.SourceMock,
	}
}

func (h *overviewAppHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}
