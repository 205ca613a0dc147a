// Package fallback holds the static overview shown when the live inventory
// source is unavailable.
package fallback

import (
	"investordash/internal/domain"

	"github.com/shopspring/decimal"
)

// Dataset is an immutable set of fallback metrics and products. Accessors
// return fresh copies, so callers may modify what they get back.
type Dataset struct {
	metrics  []domain.Metric
	products []domain.ProductPerformance
}

func NewDataset(metrics []domain.Metric, products []domain.ProductPerformance) Dataset {
	return Dataset{
		metrics:  copyMetrics(metrics),
		products: copyProducts(products),
	}
}

func (d Dataset) Metrics() []domain.Metric {
	return copyMetrics(d.metrics)
}

func (d Dataset) Products() []domain.ProductPerformance {
	return copyProducts(d.products)
}

func copyMetrics(in []domain.Metric) []domain.Metric {
	out := make([]domain.Metric, 0, len(in))
	for _, m := range in {
		out = append(out, m.DeepCopy())
	}
	return out
}

func copyProducts(in []domain.ProductPerformance) []domain.ProductPerformance {
	return append([]domain.ProductPerformance{}, in...)
}

func up(v float64) *domain.Trend {
	return &domain.Trend{Value: v, Direction: domain.TrendUp}
}

func product(id, name, sku string, share float64, units int64, revenue, aov, returnRate float64) domain.ProductPerformance {
	return domain.ProductPerformance{
		ID:            id,
		Name:          name,
		SKU:           sku,
		RevenueShare:  decimal.NewFromFloat(share),
		UnitsSold:     decimal.NewFromInt(units),
		Revenue:       decimal.NewFromFloat(revenue),
		AvgOrderValue: decimal.NewFromFloat(aov),
		ReturnRate:    decimal.NewFromFloat(returnRate),
	}
}

// Default is the dashboard's built-in sample overview.
func Default() Dataset {
	return NewDataset(
		[]domain.Metric{
			{
				Label:     "YTD Revenue",
				Value:     "$1,964,274",
				Trend:     up(18.2),
				Sparkline: []float64{178796, 96818, 149240, 211103, 151133, 165914, 210863, 123258, 171076, 170094, 177019, 158956},
				Subtitle:  "Total sales across all products",
			},
			{
				Label:     "Units Sold",
				Value:     "116,629",
				Trend:     up(12.4),
				Sparkline: []float64{10353, 5091, 8413, 14411, 8934, 9576, 15280, 6717, 12306, 9369, 9029, 7150},
				Subtitle:  "YTD units across all SKUs",
			},
			{
				Label:     "Avg Order Value",
				Value:     "$16.84",
				Trend:     up(2.1),
				Sparkline: []float64{17.26, 19.02, 17.74, 14.65, 16.92, 17.33, 13.80, 18.35, 13.90, 18.15, 19.61, 22.24},
				Subtitle:  "Revenue / Units sold",
			},
			{
				Label:     "YTD Dividends",
				Value:     "$132,056",
				Trend:     up(15.8),
				Sparkline: []float64{11887, 7296, 9434, 13107, 10992, 10916, 13594, 8871, 11320, 11592, 11861, 11179},
				Subtitle:  "Total shareholder payouts",
			},
		},
		[]domain.ProductPerformance{
			product("1", "Gummy", "GUMMY-001", 42.6, 50609, 836946.50, 16.54, 1.2),
			product("2", "Bars", "BARS-001", 36.4, 45849, 714654.50, 15.59, 1.5),
			product("3", "Capsules", "CAPS-001", 15.4, 13268, 302477.00, 22.80, 0.9),
			product("4", "Mini-Bar", "MINI-001", 5.6, 6903, 110196.00, 15.96, 1.8),
		},
	)
}
