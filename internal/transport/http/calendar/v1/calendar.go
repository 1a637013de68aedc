package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/re-fagiano/fixlab/internal/model"
	calsvc "github.com/re-fagiano/fixlab/internal/service/calendar"
	"github.com/re-fagiano/fixlab/internal/transport/http/respond"
)

type CalendarService interface {
	Grid(ctx context.Context, year int, month time.Month) calsvc.MonthGrid
	GoogleCalendarLink(ctx context.Context, t model.Ticket) (string, error)
}

type TicketProvider interface {
	ByID(ctx context.Context, id string) (*model.Ticket, error)
}

type linkResponse struct {
	URL string `json:"url"`
}

type handler struct {
	svc     CalendarService
	tickets TicketProvider
}

func NewCalendarHandler(service CalendarService, tickets TicketProvider) *handler {
	return &handler{svc: service, tickets: tickets}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/calendar/{year}/{month}", h.grid)
	r.Get("/tickets/{id}/gcal", h.googleCalendarLink)
}

func (h *handler) grid(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		respond.Error(w, fmt.Errorf("%w: anno non valido", model.ErrValidation))
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		respond.Error(w, fmt.Errorf("%w: mese non valido", model.ErrValidation))
		return
	}

	respond.JSON(w, http.StatusOK, h.svc.Grid(r.Context(), year, time.Month(month)))
}

func (h *handler) googleCalendarLink(w http.ResponseWriter, r *http.Request) {
	t, err := h.tickets.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	u, err := h.svc.GoogleCalendarLink(r.Context(), *t)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, linkResponse{URL: u})
}
