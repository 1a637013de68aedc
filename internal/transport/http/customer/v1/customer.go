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

type CustomerService interface {
	List(ctx context.Context) []model.Customer
	Create(ctx context.Context, params model.CreateCustomerParams) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
	StorageWarning() string
}

type createCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type mutationResponse struct {
	Customer       *model.Customer `json:"customer,omitempty"`
	StorageWarning string          `json:"storageWarning,omitempty"`
}

type handler struct {
	svc CustomerService
}

func NewCustomerHandler(service CustomerService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/customers", h.list)
	r.Post("/customers", h.create)
	r.Delete("/customers/{id}", h.delete)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fmt.Errorf("%w: JSON non valido", model.ErrValidation))
		return
	}

	c, err := h.svc.Create(r.Context(), model.CreateCustomerParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mutationResponse{
		Customer:       c,
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
