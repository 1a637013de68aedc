// Package respond writes JSON responses and maps domain errors onto HTTP
// statuses the way every handler expects.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(context.Background(), "encode response", logger.ErrorF(err))
	}
}

func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrBadGateway):
		status = http.StatusBadGateway
	}

	JSON(w, status, ErrorPayload{Code: status, Message: err.Error()})
}
