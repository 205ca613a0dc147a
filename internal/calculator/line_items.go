package calculator

import (
	"investordash/internal/domain"

	"github.com/shopspring/decimal"
)

// AggregateLineItems sums quantity and revenue per product across every
// line item of every order. Orders without line items contribute nothing.
// Output follows first-seen order, but callers should not rely on it.
func AggregateLineItems(orders []domain.Order) []domain.LineItemAggregate {
	byItem := map[string]*domain.LineItemAggregate{}
	keys := []string{}

	for _, order := range orders {
		for _, li := range order.LineItems {
			key := li.ProductKey()
			if key == "" {
				continue
			}
			quantity := nonNegative(li.Quantity.OrZero())
			revenue := nonNegative(lineRevenue(li, quantity))

			agg, ok := byItem[key]
			if !ok {
				agg = &domain.LineItemAggregate{
					ItemID:   key,
					Quantity: decimal.Zero,
					Revenue:  decimal.Zero,
				}
				byItem[key] = agg
				keys = append(keys, key)
			}
			agg.Quantity = agg.Quantity.Add(quantity)
			agg.Revenue = agg.Revenue.Add(revenue)
		}
	}

	out := make([]domain.LineItemAggregate, 0, len(keys))
	for _, key := range keys {
		out = append(out, *byItem[key])
	}
	return out
}

// lineRevenue prefers the line total and falls back to rate * quantity.
func lineRevenue(li domain.LineItem, quantity decimal.Decimal) decimal.Decimal {
	if li.ItemTotal.Valid {
		return li.ItemTotal.Decimal
	}
	return li.Rate.OrZero().Mul(quantity)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
