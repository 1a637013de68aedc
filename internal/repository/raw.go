package repository

import (
	"math"
	"strconv"
	"strings"
)

// Raw record shapes for untrusted JSON: hand-edited backups and storage
// slots may carry any type in any field, so every field decodes as `any`
// and goes through coercion.

type RawCustomer struct {
	ID      any `json:"id"`
	Name    any `json:"name"`
	Email   any `json:"email"`
	Phone   any `json:"phone"`
	Address any `json:"address"`
}

type RawTicket struct {
	ID          any `json:"id"`
	Subject     any `json:"subject"`
	Description any `json:"description"`
	CustomerID  any `json:"customerId"`
	Status      any `json:"status"`
	Date        any `json:"date"`
	Time        any `json:"time"`
}

type RawPart struct {
	ID       any `json:"id"`
	Name     any `json:"name"`
	Location any `json:"location"`
	Qty      any `json:"qty"`
	Price    any `json:"price"`
	MinQty   any `json:"minQty"`
}

func asString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// asNumber coerces JSON numbers and numeric strings; anything else,
// including NaN and infinities, becomes 0.
func asNumber(v any) float64 {
	var n float64
	switch vv := v.(type) {
	case float64:
		n = vv
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(vv), 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// asCount coerces to a non-negative integer.
func asCount(v any) int {
	n := asNumber(v)
	if n < 0 {
		return 0
	}
	return int(n)
}

func asPrice(v any) float64 {
	n := asNumber(v)
	if n < 0 {
		return 0
	}
	return n
}
