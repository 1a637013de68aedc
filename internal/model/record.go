package model

import (
	"strconv"
	"time"
)

const (
	StatusOpen       = "aperto"
	StatusInProgress = "in lavorazione"
)

// DefaultTime is applied to tickets with a missing or invalid time.
const DefaultTime = "09:00"

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Ticket struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	// CustomerID references a Customer by ID. It may dangle: deleting a
	// customer neither deletes nor repairs their tickets.
	CustomerID string `json:"customerId"`
	// Status is "aperto", "in lavorazione" or any free-text value.
	Status string `json:"status"`
	// Date is an ISO calendar date (2006-01-02) or empty when unknown.
	Date string `json:"date"`
	// Time is an HH:MM wall-clock time.
	Time string `json:"time"`
}

type Part struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	MinQty   int     `json:"minQty"`
}

// LowStock reports whether the part needs reordering.
func (p Part) LowStock() bool {
	return p.Qty <= p.MinQty
}

// NewID generates a record identifier as a unix-millis decimal string.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
