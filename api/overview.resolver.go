package api

import (
	"investordash/internal/domain"

	"github.com/gin-gonic/gin"
)

type OverviewResponse struct {
	Metrics  []MetricResponse             `json:"metrics"`
	Products []ProductPerformanceResponse `json:"products"`
	Source   string                       `json:"source"`
}

type MetricResponse struct {
	Label     string         `json:"label"`
	Value     string         `json:"value"`
	Trend     *TrendResponse `json:"trend,omitempty"`
	Sparkline []float64      `json:"sparkline,omitempty"`
	Subtitle  string         `json:"subtitle,omitempty"`
}

type TrendResponse struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
}

type ProductPerformanceResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	RevenueShare  float64 `json:"revenueShare"`
	UnitsSold     float64 `json:"unitsSold"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	ReturnRate    float64 `json:"returnRate"`
}

// the overview route has no error path; failures upstream are already
// folded into the mock source by the app layer
func (m ApiHandler) getOverview(c *gin.Context) {
	result := m.OverviewApp.GetOverview(c)
	c.JSON(200, OverviewResponseFromDomain(result))
}

func OverviewResponseFromDomain(result domain.OverviewResult) OverviewResponse {
	out := OverviewResponse{
		Metrics:  make([]MetricResponse, 0, len(result.Metrics)),
		Products: make([]ProductPerformanceResponse, 0, len(result.Products)),
		Source:   string(result.Source),
	}

	for _, m := range result.Metrics {
		metric := MetricResponse{
			Label:     m.Label,
			Value:     m.Value,
			Sparkline: m.Sparkline,
			Subtitle:  m.Subtitle,
		}
		if m.Trend != nil {
			metric.Trend = &TrendResponse{
				Value:     m.Trend.Value,
				Direction: string(m.Trend.Direction),
			}
		}
		out.Metrics = append(out.Metrics, metric)
	}

	for _, p := range result.Products {
		out.Products = append(out.Products, ProductPerformanceResponse{
			ID:            p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			RevenueShare:  p.RevenueShare.InexactFloat64(),
			UnitsSold:     p.UnitsSold.InexactFloat64(),
			Revenue:       p.Revenue.InexactFloat64(),
			AvgOrderValue: p.AvgOrderValue.InexactFloat64(),
			ReturnRate:    p.ReturnRate.InexactFloat64(),
		})
	}

	return out
}
