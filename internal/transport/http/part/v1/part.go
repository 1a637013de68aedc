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

type PartService interface {
	List(ctx context.Context) []model.Part
	Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error)
	UpdateStock(ctx context.Context, id string, delta int) (*model.Part, error)
	Delete(ctx context.Context, id string) error
	StorageWarning() string
}

type createPartRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	MinQty   int     `json:"minQty"`
}

type stockRequest struct {
	Delta int `json:"delta"`
}

type mutationResponse struct {
	Part           *model.Part `json:"part,omitempty"`
	LowStock       bool        `json:"lowStock"`
	StorageWarning string      `json:"storageWarning,omitempty"`
}

type handler struct {
	svc PartService
}

func NewPartHandler(service PartService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/parts", h.list)
	r.Post("/parts", h.create)
	r.Post("/parts/{id}/stock", h.updateStock)
	r.Delete("/parts/{id}", h.delete)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fmt.Errorf("%w: JSON non valido", model.ErrValidation))
		return
	}

	p, err := h.svc.Create(r.Context(), model.CreatePartParams{
		Name:     req.Name,
		Location: req.Location,
		Qty:      req.Qty,
		Price:    req.Price,
		MinQty:   req.MinQty,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mutationResponse{
		Part:           p,
		LowStock:       p.LowStock(),
		StorageWarning: h.svc.StorageWarning(),
	})
}

func (h *handler) updateStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fmt.Errorf("%w: JSON non valido", model.ErrValidation))
		return
	}

	p, err := h.svc.UpdateStock(r.Context(), chi.URLParam(r, "id"), req.Delta)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mutationResponse{
		Part:           p,
		LowStock:       p.LowStock(),
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
