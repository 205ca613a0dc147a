package calculator

import (
	"investordash/internal/domain"
	"investordash/internal/util"
	"time"

	"github.com/shopspring/decimal"
)

const (
	LabelYtdRevenue    = "YTD Revenue"
	LabelUnitsSold     = "Units Sold"
	LabelAvgOrderValue = "Avg Order Value"
	LabelYtdDividends  = "YTD Dividends"

	// dividends are not derived from sales orders yet
	dividendsPlaceholderValue = "$—"
)

type MetricOptions struct {
	IncludeDividends bool
}

// MapToDashboardMetrics reduces the year-to-date orders into the headline
// metric cards: revenue, units, average order value and, optionally, the
// dividends placeholder. The year is taken from now, in now's location.
func MapToDashboardMetrics(orders []domain.Order, now time.Time, opts MetricOptions) []domain.Metric {
	ytd := FilterOrdersToYear(orders, now)

	totalRevenue := decimal.Zero
	totalUnits := decimal.Zero
	for _, o := range ytd {
		totalRevenue = totalRevenue.Add(o.Total.OrZero())
		totalUnits = totalUnits.Add(o.Quantity.OrZero())
	}

	avgOrderValue := decimal.Zero
	if len(ytd) > 0 {
		avgOrderValue = totalRevenue.Div(decimal.NewFromInt(int64(len(ytd))))
	}

	metrics := []domain.Metric{
		{
			Label:     LabelYtdRevenue,
			Value:     FormatCurrency(totalRevenue),
			Trend:     neutralTrend(),
			Sparkline: []float64{},
			Subtitle:  "Total sales across all products",
		},
		{
			Label:     LabelUnitsSold,
			Value:     FormatNumber(totalUnits),
			Trend:     neutralTrend(),
			Sparkline: []float64{},
			Subtitle:  "YTD units across all SKUs",
		},
		{
			Label:     LabelAvgOrderValue,
			Value:     FormatCurrency(avgOrderValue),
			Trend:     neutralTrend(),
			Sparkline: []float64{},
			Subtitle:  "Revenue / Units sold",
		},
	}

	if opts.IncludeDividends {
		metrics = append(metrics, domain.Metric{
			Label:    LabelYtdDividends,
			Value:    dividendsPlaceholderValue,
			Subtitle: "Total shareholder payouts",
		})
	}

	return metrics
}

// FilterOrdersToYear keeps orders whose effective date falls in now's
// calendar year. Orders with a missing or unparseable date are dropped.
func FilterOrdersToYear(orders []domain.Order, now time.Time) []domain.Order {
	start := util.StartOfYear(now)
	end := start.AddDate(1, 0, 0)

	out := []domain.Order{}
	for _, o := range orders {
		date, ok := o.EffectiveDate(now.Location())
		if !ok {
			continue
		}
		if !date.Before(start) && date.Before(end) {
			out = append(out, o)
		}
	}
	return out
}

// trend history is not available from the live source
func neutralTrend() *domain.Trend {
	return &domain.Trend{
		Value:     0,
		Direction: domain.TrendNeutral,
	}
}
