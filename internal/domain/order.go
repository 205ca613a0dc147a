package domain

import (
	"strings"
	"time"
)

// Order is a sales order as returned by the inventory API.
type Order struct {
	SalesOrderID     ID         `json:"salesorder_id"`
	SalesOrderNumber string     `json:"salesorder_number"`
	Date             string     `json:"date"`
	CreatedTime      string     `json:"created_time,omitempty"`
	Status           string     `json:"status"`
	Total            Number     `json:"total"`
	Quantity         Number     `json:"quantity"`
	LineItems        []LineItem `json:"line_items,omitempty"`
}

type LineItem struct {
	ItemID    ID     `json:"item_id"`
	Name      string `json:"name"`
	Quantity  Number `json:"quantity"`
	Rate      Number `json:"rate"`
	ItemTotal Number `json:"item_total"`
}

// Item is a product catalog entry. Rate is the listed unit price.
type Item struct {
	ItemID ID     `json:"item_id"`
	Name   string `json:"name"`
	SKU    string `json:"sku,omitempty"`
	Rate   Number `json:"rate"`
}

// OverviewRaw is everything the overview needs from the inventory API.
type OverviewRaw struct {
	SalesOrders []Order
	Items       []Item
}

var orderTimeLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	time.DateTime,
}

func parseOrderTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range orderTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// EffectiveDate is the order date, or the creation timestamp when the
// order has no date. Dates without a zone are read in loc.
func (o Order) EffectiveDate(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	if strings.TrimSpace(o.Date) != "" {
		return parseOrderTime(o.Date, loc)
	}
	return parseOrderTime(o.CreatedTime, loc)
}

// ProductKey identifies the product a line refers to, falling back to the
// line name when the item id is missing.
func (li LineItem) ProductKey() string {
	if li.ItemID != "" {
		return li.ItemID.String()
	}
	return strings.TrimSpace(li.Name)
}
