package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	currencySuffix   = "₽" // ₽
	priceUnavailable = "N/A"
	dateUnavailable  = "date unavailable"
	displayTime      = "02.01.2006 15:04"
)

// timestampLayouts covers the encodings the ordering API has been seen to
// emit: RFC3339 with and without fractional seconds, and naive datetimes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// FormatPrice renders a price with two decimals and the currency suffix.
// Non-numeric or absent input renders as "N/A" rather than failing the view.
func FormatPrice(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return priceUnavailable
	}
	return fmt.Sprintf("%.2f%s", f, currencySuffix)
}

// FormatSubtotal renders price-per-unit times quantity with two decimals.
func FormatSubtotal(pricePerItem json.Number, quantity int) string {
	f, err := pricePerItem.Float64()
	if err != nil {
		return priceUnavailable
	}
	return fmt.Sprintf("%.2f%s", f*float64(quantity), currencySuffix)
}

// FormatTimestamp renders an API timestamp for display. Missing or
// unparseable input renders as "date unavailable" rather than failing the view.
func FormatTimestamp(raw string) string {
	if raw == "" {
		return dateUnavailable
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayTime)
		}
	}
	return dateUnavailable
}
