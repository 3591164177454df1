package checkout

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultTitle     = "Producto de Prueba (MotoYa)"
	DefaultQuantity  = 1
	DefaultUnitPrice = 100.0

	maxQuantity = math.MaxInt32
)

// OrderRequest is the order description sent by the storefront.
// Values are always usable: DecodeOrderRequest substitutes defaults for anything missing or invalid.
type OrderRequest struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// DecodeOrderRequest reads an optional JSON body {title?, quantity?, price?}.
// It never fails. Malformed JSON or a non-object body yields the defaults.
func DecodeOrderRequest(body []byte) OrderRequest {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		fields = nil
	}

	return OrderRequest{
		Title:     coerceTitle(fields["title"]),
		Quantity:  coerceQuantity(fields["quantity"]),
		UnitPrice: coerceUnitPrice(fields["price"]),
	}
}

func coerceTitle(raw json.RawMessage) string {
	var title string
	if err := json.Unmarshal(raw, &title); err != nil {
		return DefaultTitle
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

func coerceQuantity(raw json.RawMessage) int {
	n, ok := coerceNumber(raw)
	if !ok {
		return DefaultQuantity
	}

	q := math.Trunc(n)
	if q < 1 || q > maxQuantity {
		return DefaultQuantity
	}
	return int(q)
}

func coerceUnitPrice(raw json.RawMessage) float64 {
	n, ok := coerceNumber(raw)
	if !ok || n <= 0 {
		return DefaultUnitPrice
	}
	return n
}

// coerceNumber accepts a JSON number or a numeric string.
func coerceNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		n, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
