// Package deepseek calls the provider's chat-completions endpoint, either
// directly with a held key or through the local proxy path that attaches
// its own credential.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/re-fagiano/fixlab/internal/model"
)

const systemPrompt = "Sei un tecnico esperto di elettrodomestici. " +
	"Analizza il problema e fornisci: 1) Possibile Causa 2) Diagnosi 3) Ricambi."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type Client struct {
	httpc    *http.Client
	endpoint string
	apiKey   string
	model    string
	// proxied means the endpoint is this service's own proxy: no bearer
	// token is attached, the proxy holds the credential.
	proxied bool
}

func NewClient(httpc *http.Client, endpoint, apiKey, mdl string, proxied bool) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		httpc:    httpc,
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    mdl,
		proxied:  proxied,
	}
}

// Analyze asks for a diagnosis of the ticket's subject and description and
// returns the assistant content verbatim.
func (c *Client) Analyze(ctx context.Context, subject, description string) (string, error) {
	const op = "deepseek.client.Analyze"

	if !c.proxied && c.apiKey == "" {
		return "", fmt.Errorf("%s: %w: imposta DEEPSEEK_API_KEY", op, model.ErrMissingAPIKey)
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Oggetto: %s. Descrizione: %s", subject, description)},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if !c.proxied {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.proxied {
			return "", fmt.Errorf("%s: %w: proxy locale non raggiungibile: %v", op, model.ErrBadGateway, err)
		}
		return "", fmt.Errorf("%s: %w: endpoint DeepSeek non raggiungibile: %v", op, model.ErrBadGateway, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s: %w: errore API: %d", op, model.ErrBadGateway, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%s: %w", op, model.ErrInvalidResponse)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: %w", op, model.ErrInvalidResponse)
	}

	return parsed.Choices[0].Message.Content, nil
}
