package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/re-fagiano/fixlab/internal/model"
	backupsvc "github.com/re-fagiano/fixlab/internal/service/backup"
	"github.com/re-fagiano/fixlab/internal/transport/http/respond"
)

type BackupService interface {
	Export(ctx context.Context) model.Backup
	Import(ctx context.Context, raw backupsvc.RawBackup) error
	Reset(ctx context.Context)
	CustomersCSV(ctx context.Context) string
	TicketsCSV(ctx context.Context) string
	InventoryCSV(ctx context.Context) string
}

type importResponse struct {
	Imported bool `json:"imported"`
}

type handler struct {
	svc BackupService
}

func NewBackupHandler(service BackupService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/backup", h.export)
	r.Post("/backup", h.importBackup)
	r.Post("/reset", h.reset)
	r.Get("/export/tickets.csv", h.csv("tickets.csv", h.svc.TicketsCSV))
	r.Get("/export/inventory.csv", h.csv("inventory.csv", h.svc.InventoryCSV))
	r.Get("/export/customers.csv", h.csv("customers.csv", h.svc.CustomersCSV))
}

func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.svc.Export(r.Context()))
}

func (h *handler) importBackup(w http.ResponseWriter, r *http.Request) {
	var raw backupsvc.RawBackup
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respond.Error(w, fmt.Errorf("%w: file di backup non valido", model.ErrValidation))
		return
	}

	if err := h.svc.Import(r.Context(), raw); err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, importResponse{Imported: true})
}

func (h *handler) reset(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) csv(filename string, render func(ctx context.Context) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = w.Write([]byte(render(r.Context())))
	}
}
