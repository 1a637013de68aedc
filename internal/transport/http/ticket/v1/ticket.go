package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/transport/http/respond"
)

type TicketService interface {
	List(ctx context.Context) []model.Ticket
	Create(ctx context.Context, params model.CreateTicketParams) (*model.Ticket, error)
	Delete(ctx context.Context, id string) error
	StorageWarning() string
}

type createTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	CustomerID  string `json:"customerId"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type mutationResponse struct {
	Ticket         *model.Ticket `json:"ticket,omitempty"`
	StorageWarning string        `json:"storageWarning,omitempty"`
}

type handler struct {
	svc TicketService
}

func NewTicketHandler(service TicketService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/tickets", h.list)
	r.Post("/tickets", h.create)
	r.Delete("/tickets/{id}", h.delete)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fmt.Errorf("%w: JSON non valido", model.ErrValidation))
		return
	}

	t, err := h.svc.Create(r.Context(), model.CreateTicketParams{
		Subject:     req.Subject,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		Status:      req.Status,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mutationResponse{
		Ticket:         t,
		StorageWarning: h.svc.StorageWarning(),
	})
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	if warning := h.svc.StorageWarning(); warning != "" {
		respond.JSON(w, http.StatusOK, mutationResponse{StorageWarning: warning})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
