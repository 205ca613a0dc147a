package domain

import "github.com/shopspring/decimal"

type Source string

const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)

type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

type Trend struct {
	Value     float64
	Direction TrendDirection
}

// Metric is one headline card on the dashboard.
type Metric struct {
	Label     string
	Value     string
	Trend     *Trend
	Sparkline []float64
	Subtitle  string
}

func (m Metric) DeepCopy() Metric {
	out := m
	if m.Trend != nil {
		t := *m.Trend
		out.Trend = &t
	}
	if m.Sparkline != nil {
		out.Sparkline = append([]float64{}, m.Sparkline...)
	}
	return out
}

type LineItemAggregate struct {
	ItemID   string
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

type ProductPerformance struct {
	ID            string
	Name          string
	SKU           string
	RevenueShare  decimal.Decimal
	UnitsSold     decimal.Decimal
	Revenue       decimal.Decimal
	AvgOrderValue decimal.Decimal
	ReturnRate    decimal.Decimal
}

type OverviewResult struct {
	Metrics  []Metric
	Products []ProductPerformance
	Source   Source
}
