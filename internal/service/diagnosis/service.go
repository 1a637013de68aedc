package service

import (
	"context"
	"strings"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

type ChatClient interface {
	Analyze(ctx context.Context, subject, description string) (string, error)
}

type service struct {
	client ChatClient
	rules  []Rule
}

func NewDiagnosisService(client ChatClient, rules []Rule) *service {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &service{client: client, rules: rules}
}

// Analyze produces a diagnosis for the ticket. A live chat-completion
// result is preferred; on a missing credential or any call failure the
// keyword heuristic answers instead, labeled Offline together with the
// reason the live call did not happen. Analyze never fails.
func (s *service) Analyze(ctx context.Context, t model.Ticket) model.Diagnosis {
	log := logger.With(
		logger.String("ticket_id", t.ID),
		logger.String("subject", t.Subject),
	)

	text, err := s.client.Analyze(ctx, t.Subject, t.Description)
	if err != nil {
		log.Warn(ctx, "live diagnosis unavailable, using offline heuristic",
			logger.ErrorF(err),
		)
		return model.Diagnosis{
			Text:   s.offlineText(t),
			Source: model.SourceOffline,
			Reason: err.Error(),
		}
	}

	return model.Diagnosis{Text: text, Source: model.SourceLive}
}

func (s *service) offlineText(t model.Ticket) string {
	haystack := strings.ToLower(t.Subject + " " + t.Description)
	for _, r := range s.rules {
		if r.matches(haystack) {
			return r.Text
		}
	}
	return genericFallback
}
