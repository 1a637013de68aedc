package repository

import (
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
)

// Seed datasets loaded when a storage slot is absent or unparsable. Same
// sample records the workshop app has always shipped with.

func SeedCustomers() []model.Customer {
	return []model.Customer{
		{ID: "1", Name: "Maria Bianchi", Email: "maria@test.com", Phone: "3339988776", Address: "Via dei Fiori 12"},
		{ID: "2", Name: "Ristorante Da Luigi", Email: "info@luigi.com", Phone: "06123456", Address: "Piazza Navona 5"},
	}
}

func SeedTickets() []model.Ticket {
	today := time.Now().Format("2006-01-02")
	return []model.Ticket{
		{
			ID:          "101",
			Subject:     "Lavatrice non scarica",
			Description: "La lavatrice Bosch si blocca piena di acqua",
			CustomerID:  "1",
			Status:      model.StatusOpen,
			Date:        today,
			Time:        "09:00",
		},
		{
			ID:          "102",
			Subject:     "Frigorifero caldo",
			Description: "Il reparto freezer funziona ma il frigo è caldo",
			CustomerID:  "2",
			Status:      model.StatusInProgress,
			Date:        today,
			Time:        "14:30",
		},
	}
}

func SeedParts() []model.Part {
	return []model.Part{
		{ID: "p1", Name: "Pompa Scarico Universale", Location: "AF-01-A", Qty: 3, Price: 25.00, MinQty: 5},
		{ID: "p2", Name: "Cuscinetti Cestello", Location: "BF-02-C", Qty: 10, Price: 15.50, MinQty: 2},
		{ID: "p3", Name: "Scheda Elettronica Samsung", Location: "SEC-09", Qty: 1, Price: 120.00, MinQty: 1},
	}
}
