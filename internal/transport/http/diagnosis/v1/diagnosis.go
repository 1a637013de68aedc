package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/transport/http/respond"
)

type DiagnosisService interface {
	Analyze(ctx context.Context, t model.Ticket) model.Diagnosis
}

type TicketProvider interface {
	ByID(ctx context.Context, id string) (*model.Ticket, error)
}

type handler struct {
	svc     DiagnosisService
	tickets TicketProvider
}

func NewDiagnosisHandler(service DiagnosisService, tickets TicketProvider) *handler {
	return &handler{svc: service, tickets: tickets}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/tickets/{id}/diagnosis", h.analyze)
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	t, err := h.tickets.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, h.svc.Analyze(r.Context(), *t))
}
