package domain

import (
	"bytes"
	"encoding/json"
)

// The inventory API is loose about field types. A record with a malformed
// field decodes with that field zeroed rather than failing its whole page.

// text decodes any JSON scalar as a string. Objects, arrays and null read
// as empty.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	*t = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*t = text(s)
		}
	case '{', '[', 'n':
	default:
		*t = text(b)
	}
	return nil
}

// lineItems reads anything other than an array as no line items.
type lineItems []LineItem

func (l *lineItems) UnmarshalJSON(b []byte) error {
	*l = nil
	if !isJsonKind(b, '[') {
		return nil
	}
	var out []LineItem
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	*l = out
	return nil
}

func isJsonKind(b []byte, open byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == open
}

// decodeRecord fills dst from an object, leaving it zero for anything else.
func decodeRecord(b []byte, dst any) {
	if !isJsonKind(b, '{') {
		return
	}
	_ = json.Unmarshal(b, dst)
}

func (o *Order) UnmarshalJSON(b []byte) error {
	var raw struct {
		SalesOrderID     ID        `json:"salesorder_id"`
		SalesOrderNumber text      `json:"salesorder_number"`
		Date             text      `json:"date"`
		CreatedTime      text      `json:"created_time"`
		Status           text      `json:"status"`
		Total            Number    `json:"total"`
		Quantity         Number    `json:"quantity"`
		LineItems        lineItems `json:"line_items"`
	}
	decodeRecord(b, &raw)

	*o = Order{
		SalesOrderID:     raw.SalesOrderID,
		SalesOrderNumber: string(raw.SalesOrderNumber),
		Date:             string(raw.Date),
		CreatedTime:      string(raw.CreatedTime),
		Status:           string(raw.Status),
		Total:            raw.Total,
		Quantity:         raw.Quantity,
		LineItems:        raw.LineItems,
	}
	return nil
}

func (li *LineItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		ItemID    ID     `json:"item_id"`
		Name      text   `json:"name"`
		Quantity  Number `json:"quantity"`
		Rate      Number `json:"rate"`
		ItemTotal Number `json:"item_total"`
	}
	decodeRecord(b, &raw)

	*li = LineItem{
		ItemID:    raw.ItemID,
		Name:      string(raw.Name),
		Quantity:  raw.Quantity,
		Rate:      raw.Rate,
		ItemTotal: raw.ItemTotal,
	}
	return nil
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var raw struct {
		ItemID ID     `json:"item_id"`
		Name   text   `json:"name"`
		SKU    text   `json:"sku"`
		Rate   Number `json:"rate"`
	}
	decodeRecord(b, &raw)

	*i = Item{
		ItemID: raw.ItemID,
		Name:   string(raw.Name),
		SKU:    string(raw.SKU),
		Rate:   raw.Rate,
	}
	return nil
}
