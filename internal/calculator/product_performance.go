package calculator

import (
	"fmt"
	"investordash/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MapToProductPerformance builds one performance row per catalog item, in
// catalog order. A nil aggregates slice means no line-item detail was
// available and every item reports zero sales.
func MapToProductPerformance(items []domain.Item, aggregates []domain.LineItemAggregate) []domain.ProductPerformance {
	byItem := map[string]domain.LineItemAggregate{}
	for _, agg := range aggregates {
		existing, ok := byItem[agg.ItemID]
		if ok {
			existing.Quantity = existing.Quantity.Add(agg.Quantity)
			existing.Revenue = existing.Revenue.Add(agg.Revenue)
			byItem[agg.ItemID] = existing
		} else {
			byItem[agg.ItemID] = agg
		}
	}

	totalRevenue := decimal.Zero
	for _, agg := range byItem {
		totalRevenue = totalRevenue.Add(agg.Revenue)
	}

	out := make([]domain.ProductPerformance, 0, len(items))
	for _, item := range items {
		id := item.ItemID.String()

		revenue := decimal.Zero
		unitsSold := decimal.Zero
		if agg, ok := byItem[id]; ok {
			revenue = agg.Revenue
			unitsSold = agg.Quantity
		}

		revenueShare := decimal.Zero
		if totalRevenue.IsPositive() {
			revenueShare = revenue.Div(totalRevenue).Mul(hundred)
		}

		avgOrderValue := item.Rate.OrZero()
		if unitsSold.IsPositive() {
			avgOrderValue = revenue.Div(unitsSold)
		}

		name := item.Name
		if name == "" {
			name = "Unknown"
		}
		sku := item.SKU
		if sku == "" {
			sku = fmt.Sprintf("ITEM-%s", id)
		}

		out = append(out, domain.ProductPerformance{
			ID:            id,
			Name:          name,
			SKU:           sku,
			RevenueShare:  revenueShare.Round(1),
			UnitsSold:     unitsSold,
			Revenue:       revenue,
			AvgOrderValue: avgOrderValue.Round(2),
			ReturnRate:    decimal.Zero,
		})
	}

	return out
}
