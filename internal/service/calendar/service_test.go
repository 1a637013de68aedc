package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/re-fagiano/fixlab/internal/model"
)

type stubTickets struct {
	tickets []model.Ticket
}

func (s stubTickets) List() []model.Ticket { return s.tickets }

type stubCustomers struct {
	customers map[string]model.Customer
}

func (s stubCustomers) ByID(id string) (model.Customer, bool) {
	c, ok := s.customers[id]
	return c, ok
}

func newTestService(tickets []model.Ticket, customers map[string]model.Customer) *service {
	svc := NewCalendarService(
		stubTickets{tickets: tickets},
		stubCustomers{customers: customers},
	)
	svc.now = func() time.Time {
		return time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestServiceGrid(t *testing.T) {
	t.Parallel()

	t.Run("month starting mid-week pads to monday", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(nil, nil)

		// October 2025 starts on a Wednesday.
		grid := svc.Grid(context.Background(), 2025, time.October)

		require.Len(t, grid.Days, 2+31)
		assert.Nil(t, grid.Days[0])
		assert.Nil(t, grid.Days[1])
		require.NotNil(t, grid.Days[2])
		assert.Equal(t, 1, grid.Days[2].Day)
		assert.Equal(t, "2025-10-01", grid.Days[2].Date)
	})

	t.Run("month starting on sunday pads six cells", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(nil, nil)

		// March 2026 starts on a Sunday.
		grid := svc.Grid(context.Background(), 2026, time.March)

		require.Len(t, grid.Days, 6+31)
		for i := 0; i < 6; i++ {
			assert.Nil(t, grid.Days[i])
		}
		require.NotNil(t, grid.Days[6])
		assert.Equal(t, 1, grid.Days[6].Day)
	})

	t.Run("today flag follows the clock", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(nil, nil)

		grid := svc.Grid(context.Background(), 2025, time.October)

		for _, cell := range grid.Days {
			if cell == nil {
				continue
			}
			assert.Equal(t, cell.Date == "2025-10-15", cell.Today, "day %d", cell.Day)
		}
	})

	t.Run("tickets land on their day sorted by time", func(t *testing.T) {
		t.Parallel()

		svc := newTestService([]model.Ticket{
			{ID: "b", Subject: "Pomeriggio", Date: "2025-10-03", Time: "15:00"},
			{ID: "a", Subject: "Mattina", Date: "2025-10-03", Time: "09:30"},
			{ID: "c", Subject: "Senza data", Date: "", Time: "09:00"},
		}, nil)

		grid := svc.Grid(context.Background(), 2025, time.October)

		// leading pad is 2, so day 3 sits at index 4
		day3 := grid.Days[4]
		require.NotNil(t, day3)
		require.Len(t, day3.Tickets, 2)
		assert.Equal(t, "a", day3.Tickets[0].ID)
		assert.Equal(t, "b", day3.Tickets[1].ID)

		for _, cell := range grid.Days {
			if cell == nil {
				continue
			}
			assert.NotNil(t, cell.Tickets)
		}
	})
}

func TestServiceGoogleCalendarLink(t *testing.T) {
	t.Parallel()

	customers := map[string]model.Customer{
		"1": {
			ID:      "1",
			Name:    "Maria Bianchi",
			Phone:   "3339988776",
			Address: "Via dei Fiori 12",
		},
	}

	t.Run("one-hour event with customer details", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(nil, customers)

		link, err := svc.GoogleCalendarLink(context.Background(), model.Ticket{
			ID:          "101",
			Subject:     "Lavatrice non scarica",
			Description: "Si blocca piena di acqua",
			CustomerID:  "1",
			Date:        "2025-11-20",
			Time:        "16:45",
		})
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "calendar.google.com", u.Host)
		assert.Equal(t, "/calendar/render", u.Path)

		q := u.Query()
		assert.Equal(t, "TEMPLATE", q.Get("action"))
		assert.Equal(t, "Intervento FIXLAB: Lavatrice non scarica", q.Get("text"))
		assert.Equal(t, "Via dei Fiori 12", q.Get("location"))
		assert.Equal(t, "20251120T164500Z/20251120T174500Z", q.Get("dates"))
		assert.Contains(t, q.Get("details"), "Problema: Si blocca piena di acqua")
		assert.Contains(t, q.Get("details"), "Cliente: Maria Bianchi")
		assert.Contains(t, q.Get("details"), "Tel: 3339988776")
	})

	t.Run("missing date and time default to today at nine", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(nil, customers)

		link, err := svc.GoogleCalendarLink(context.Background(), model.Ticket{
			Subject:    "Controllo",
			CustomerID: "1",
		})
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "20251015T090000Z/20251015T100000Z", u.Query().Get("dates"))
	})

	t.Run("unknown customer leaves contact fields empty", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(nil, nil)

		link, err := svc.GoogleCalendarLink(context.Background(), model.Ticket{
			Subject:    "Controllo",
			CustomerID: "ghost",
			Date:       "2025-11-20",
			Time:       "10:00",
		})
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Contains(t, u.Query().Get("details"), "Cliente: \nTel: ")
	})

	t.Run("broken schedule is rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(nil, customers)

		_, err := svc.GoogleCalendarLink(context.Background(), model.Ticket{
			Subject:    "Controllo",
			CustomerID: "1",
			Date:       "2025-02-30",
			Time:       "10:00",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}
