package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	dashsvc "github.com/re-fagiano/fixlab/internal/service/dashboard"
	"github.com/re-fagiano/fixlab/internal/transport/http/respond"
)

type DashboardService interface {
	Summary(ctx context.Context) dashsvc.Summary
}

type handler struct {
	svc DashboardService
}

func NewDashboardHandler(service DashboardService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/dashboard", h.summary)
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.svc.Summary(r.Context()))
}
