package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
	"github.com/re-fagiano/fixlab/internal/repository"
)

type TicketRepository interface {
	List() []model.Ticket
	ByID(id string) (model.Ticket, bool)
	Add(t model.Ticket)
	Delete(id string) error
	StorageWarning() string
}

type service struct {
	repo TicketRepository
}

func NewTicketService(repo TicketRepository) *service {
	return &service{repo: repo}
}

func (s *service) List(_ context.Context) []model.Ticket {
	return s.repo.List()
}

func (s *service) ByID(ctx context.Context, id string) (*model.Ticket, error) {
	const op = "ticket.service.ByID"

	t, ok := s.repo.ByID(id)
	if !ok {
		logger.Error(ctx, "ticket not found", logger.String("ticket_id", id))
		return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return &t, nil
}

func (s *service) Create(ctx context.Context, params model.CreateTicketParams) (*model.Ticket, error) {
	const op = "ticket.service.Create"
	log := logger.With(
		logger.String("subject", params.Subject),
		logger.String("customer_id", params.CustomerID),
	)

	subject := strings.TrimSpace(params.Subject)
	if subject == "" || strings.TrimSpace(params.CustomerID) == "" {
		log.Error(ctx, "validation: subject and customer are required")
		return nil, fmt.Errorf("%s: %w: oggetto e cliente sono obbligatori", op, model.ErrValidation)
	}

	status := strings.TrimSpace(params.Status)
	if status == "" {
		status = model.StatusOpen
	}

	date := repository.SanitizeDate(params.Date)
	if strings.TrimSpace(params.Date) == "" {
		date = time.Now().Format("2006-01-02")
	}

	t := model.Ticket{
		ID:          model.NewID(),
		Subject:     subject,
		Description: strings.TrimSpace(params.Description),
		CustomerID:  strings.TrimSpace(params.CustomerID),
		Status:      status,
		Date:        date,
		Time:        repository.SanitizeTime(params.Time),
	}
	s.repo.Add(t)

	return &t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "ticket.service.Delete"

	if err := s.repo.Delete(id); err != nil {
		logger.Error(ctx, "repository delete ticket",
			logger.String("ticket_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) StorageWarning() string {
	return s.repo.StorageWarning()
}
