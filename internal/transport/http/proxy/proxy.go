package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

// Handler inoltra le richieste di chat completion a DeepSeek tenendo la
// chiave API solo lato server. Il browser non la vede mai.
type Handler struct {
	httpc    *http.Client
	upstream string
	apiKey   func() string
}

func NewHandler(httpc *http.Client, upstreamBaseURL string, apiKey func() string) *Handler {
	return &Handler{
		httpc:    httpc,
		upstream: upstreamBaseURL + "/chat/completions",
		apiKey:   apiKey,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "metodo non consentito")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "corpo della richiesta non leggibile")
		return
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	} else if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "JSON non valido")
		return
	}

	key := h.apiKey()
	if key == "" {
		writeError(w, http.StatusInternalServerError,
			"DEEPSEEK_API_KEY non configurata lato server.")
		return
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost, h.upstream, bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "richiesta verso DeepSeek non valida")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := h.httpc.Do(req)
	if err != nil {
		logger.Warn(ctx, "deepseek upstream unreachable", logger.ErrorF(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	defer func() { _ = resp.Body.Close() }()

	upstreamBody, err := io.ReadAll(resp.Body)
	if err != nil {
		writeError(w, http.StatusBadGateway, "risposta di DeepSeek non leggibile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)

	if json.Valid(upstreamBody) {
		_, _ = w.Write(upstreamBody)
		return
	}
	// corpo non JSON, lo si restituisce come stringa JSON
	encoded, _ := json.Marshal(string(upstreamBody))
	_, _ = w.Write(encoded)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
