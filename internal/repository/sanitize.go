package repository

import (
	"fmt"
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
)

// Sanitizers normalize untrusted records into well-formed ones. They never
// fail: a broken field gets a deterministic default instead.

func SanitizeCustomer(raw RawCustomer, idx int, now time.Time) model.Customer {
	return model.Customer{
		ID:      sanitizeID(raw.ID, idx, now),
		Name:    sanitizeLabel(raw.Name, "Cliente", idx),
		Email:   asString(raw.Email),
		Phone:   asString(raw.Phone),
		Address: asString(raw.Address),
	}
}

func SanitizeTicket(raw RawTicket, idx int, now time.Time) model.Ticket {
	status := asString(raw.Status)
	if status == "" {
		status = model.StatusOpen
	}

	return model.Ticket{
		ID:          sanitizeID(raw.ID, idx, now),
		Subject:     sanitizeLabel(raw.Subject, "Ticket", idx),
		Description: asString(raw.Description),
		CustomerID:  asString(raw.CustomerID),
		Status:      status,
		Date:        SanitizeDate(raw.Date),
		Time:        SanitizeTime(raw.Time),
	}
}

func SanitizePart(raw RawPart, idx int, now time.Time) model.Part {
	return model.Part{
		ID:       sanitizeID(raw.ID, idx, now),
		Name:     sanitizeLabel(raw.Name, "Articolo", idx),
		Location: asString(raw.Location),
		Qty:      asCount(raw.Qty),
		Price:    asPrice(raw.Price),
		MinQty:   asCount(raw.MinQty),
	}
}

func SanitizeCustomers(raws []RawCustomer, now time.Time) []model.Customer {
	out := make([]model.Customer, 0, len(raws))
	for i, raw := range raws {
		out = append(out, SanitizeCustomer(raw, i, now))
	}
	return out
}

func SanitizeTickets(raws []RawTicket, now time.Time) []model.Ticket {
	out := make([]model.Ticket, 0, len(raws))
	for i, raw := range raws {
		out = append(out, SanitizeTicket(raw, i, now))
	}
	return out
}

func SanitizeParts(raws []RawPart, now time.Time) []model.Part {
	out := make([]model.Part, 0, len(raws))
	for i, raw := range raws {
		out = append(out, SanitizePart(raw, i, now))
	}
	return out
}

// SanitizeDate keeps only exact ISO calendar dates; everything else becomes
// the empty string the views render as "unknown".
func SanitizeDate(v any) string {
	s := asString(v)
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

// SanitizeTime keeps only valid HH:MM values, defaulting to 09:00.
func SanitizeTime(v any) string {
	s := asString(v)
	if s == "" {
		return model.DefaultTime
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return model.DefaultTime
	}
	return s
}

// sanitizeID synthesizes a unique-within-batch identifier from the current
// time and the record index when the stored id is missing or not a string.
func sanitizeID(v any, idx int, now time.Time) string {
	if s := asString(v); s != "" {
		return s
	}
	return fmt.Sprintf("%d-%d", now.UnixMilli(), idx)
}

func sanitizeLabel(v any, prefix string, idx int) string {
	if s := asString(v); s != "" {
		return s
	}
	return fmt.Sprintf("%s %d", prefix, idx+1)
}
