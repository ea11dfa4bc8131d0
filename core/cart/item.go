package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a product identity. The remote API emits product ids as JSON numbers
// or strings interchangeably, so the type carries the string form and
// unmarshals both; comparisons are plain string equality.
type ID string

// UnmarshalJSON accepts a JSON string, number, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into product id", data)
}

// LineItem is one product's entry in a cart. Quantity is always >= 1 while
// the item exists.
type LineItem struct {
	ID       ID      `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
	Quantity int     `json:"quantity"`
}

// Product is the subset of a catalog product a line item is built from.
type Product struct {
	ID       ID
	Title    string
	Price    float64
	ImageURL string
}

// decodeItems parses a persisted cart payload. Anything other than a JSON
// array of line items decodes to an empty cart; corruption is recovered, not
// reported.
func decodeItems(raw string) []LineItem {
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []LineItem{}
	}
	if items == nil {
		return []LineItem{}
	}
	return items
}

// encodeItems renders a cart for persistence.
func encodeItems(items []LineItem) (string, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
