package service

import (
	"context"
	"strconv"
	"strings"
)

// CSV exports are semicolon-delimited with every field quoted and internal
// quotes doubled, one header row per collection.

func (s *service) CustomersCSV(_ context.Context) string {
	rows := [][]string{{"ID", "Nome", "Email", "Telefono", "Indirizzo"}}
	for _, c := range s.customers.List() {
		rows = append(rows, []string{c.ID, c.Name, c.Email, c.Phone, c.Address})
	}
	return renderCSV(rows)
}

func (s *service) TicketsCSV(_ context.Context) string {
	rows := [][]string{{"ID", "Oggetto", "Descrizione", "Cliente", "Stato", "Data", "Ora"}}
	for _, t := range s.tickets.List() {
		rows = append(rows, []string{t.ID, t.Subject, t.Description, t.CustomerID, t.Status, t.Date, t.Time})
	}
	return renderCSV(rows)
}

func (s *service) InventoryCSV(_ context.Context) string {
	rows := [][]string{{"ID", "Nome", "Posizione", "Quantita", "Prezzo", "ScortaMinima"}}
	for _, p := range s.parts.List() {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Location,
			strconv.Itoa(p.Qty),
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.MinQty),
		})
	}
	return renderCSV(rows)
}

func renderCSV(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
