package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a loosely typed numeric field from the inventory API. It accepts
// JSON numbers, numeric strings and null. Anything that fails to parse is
// treated as absent and reads as zero.
type Number struct {
	decimal.NullDecimal
}

func NewNumber(f float64) Number {
	return Number{decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}}
}

func NewNumberFromString(s string) Number {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Number{}
	}
	return Number{decimal.NullDecimal{Decimal: d, Valid: true}}
}

// OrZero returns the parsed value, or zero when the field was missing
// or malformed.
func (n Number) OrZero() decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var d decimal.NullDecimal
	if err := d.UnmarshalJSON(b); err != nil {
		*n = Number{}
		return nil
	}
	n.NullDecimal = d
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Decimal.String()), nil
}

// ID is a product or order identifier. The upstream API is inconsistent
// about sending identifiers as strings or numbers. Numeric values, quoted
// or not, decode to their canonical decimal form so 100, 100.0 and "100.0"
// all read as "100". Other strings are only trimmed.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*id = ""
			return nil
		}
		s = strings.TrimSpace(s)
		if d, err := decimal.NewFromString(s); err == nil {
			*id = ID(d.String())
			return nil
		}
		*id = ID(s)
		return nil
	}

	d, err := decimal.NewFromString(string(b))
	if err != nil {
		*id = ""
		return nil
	}
	*id = ID(d.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}
