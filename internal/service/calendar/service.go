package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

type TicketLister interface {
	List() []model.Ticket
}

type CustomerFinder interface {
	ByID(id string) (model.Customer, bool)
}

// DayCell is one slot of the month grid. Leading cells before day 1 are nil.
type DayCell struct {
	Day     int            `json:"day"`
	Date    string         `json:"date"`
	Today   bool           `json:"today"`
	Tickets []model.Ticket `json:"tickets"`
}

type MonthGrid struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Days  []*DayCell `json:"days"`
}

type service struct {
	tickets   TicketLister
	customers CustomerFinder
	now       func() time.Time
}

func NewCalendarService(tickets TicketLister, customers CustomerFinder) *service {
	return &service{tickets: tickets, customers: customers, now: time.Now}
}

// Grid lays out the month with a Monday-start week: the weekday index of
// day 1 (Sunday = 0) is remapped so Sunday pads six leading cells and every
// other day shifts down by one.
func (s *service) Grid(_ context.Context, year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	leading := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		leading = 6
	}

	byDate := map[string][]model.Ticket{}
	for _, t := range s.tickets.List() {
		if t.Date != "" {
			byDate[t.Date] = append(byDate[t.Date], t)
		}
	}
	for _, ts := range byDate {
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].Time < ts[j].Time })
	}

	today := s.now().Format("2006-01-02")

	days := make([]*DayCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		days = append(days, nil)
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		tickets := byDate[date]
		if tickets == nil {
			tickets = []model.Ticket{}
		}
		days = append(days, &DayCell{
			Day:     d,
			Date:    date,
			Today:   date == today,
			Tickets: tickets,
		})
	}

	return MonthGrid{Year: year, Month: int(month), Days: days}
}

// GoogleCalendarLink composes the external calendar deep link for a ticket:
// a one-hour event carrying the problem details and the customer's contact
// info. The composed date and time are validated first so the caller gets
// an error instead of a broken link.
func (s *service) GoogleCalendarLink(ctx context.Context, t model.Ticket) (string, error) {
	const op = "calendar.service.GoogleCalendarLink"
	log := logger.With(
		logger.String("ticket_id", t.ID),
		logger.String("date", t.Date),
		logger.String("time", t.Time),
	)

	dateStr := t.Date
	if dateStr == "" {
		dateStr = s.now().Format("2006-01-02")
	}
	timeStr := t.Time
	if timeStr == "" {
		timeStr = model.DefaultTime
	}

	start, err := time.Parse("2006-01-02T15:04", dateStr+"T"+timeStr)
	if err != nil {
		log.Error(ctx, "invalid event date/time", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w: data o ora intervento non valide", op, model.ErrValidation)
	}
	end := start.Add(time.Hour)

	customer, _ := s.customers.ByID(t.CustomerID)

	details := fmt.Sprintf("Problema: %s\nCliente: %s\nTel: %s",
		t.Description, customer.Name, customer.Phone)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", "Intervento FIXLAB: "+t.Subject)
	q.Set("details", details)
	q.Set("location", customer.Address)
	q.Set("dates", gcalTime(start)+"/"+gcalTime(end))

	return "https://calendar.google.com/calendar/render?" + q.Encode(), nil
}

// gcalTime renders the compact UTC timestamp Google Calendar expects
// (dashes, colons and sub-second digits stripped).
func gcalTime(t time.Time) string {
	s := t.UTC().Format("2006-01-02T15:04:05Z")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, ":", "")
}
