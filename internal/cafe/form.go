package cafe

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber decodes a price field that may arrive as a JSON number, a
// numeric string, an empty string, or null. Anything non-numeric becomes 0
// rather than failing the decode.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

func (n FlexNumber) Float64() float64 {
	return float64(n)
}

// LineItemRow is a raw beverage/food row exactly as submitted by the form,
// before normalization.
type LineItemRow struct {
	Name   string     `json:"name"`
	Price  FlexNumber `json:"price"`
	Rating float64    `json:"rating"`
	Notes  string     `json:"notes"`
}

type OrderRow struct {
	Person string  `json:"person"`
	Rating float64 `json:"rating"`
	Notes  string  `json:"notes"`
}

// Form is the raw create/update payload. The normalizer turns it into a
// canonical Cafe record.
type Form struct {
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	Features    []string      `json:"features"`
	Order       OrderRow      `json:"order"`
	Beverages   []LineItemRow `json:"beverages"`
	Foods       []LineItemRow `json:"foods"`
	Vibe        float64       `json:"vibe"`
	Staff       float64       `json:"staff"`
	Seats       float64       `json:"seats"`
	CreatedBy   string        `json:"created_by"`
}
