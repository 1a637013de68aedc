package service

import (
	"context"
	"fmt"
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
	"github.com/re-fagiano/fixlab/internal/repository"
)

type CustomerRepository interface {
	List() []model.Customer
	ReplaceAll(records []model.Customer)
}

type TicketRepository interface {
	List() []model.Ticket
	ReplaceAll(records []model.Ticket)
}

type PartRepository interface {
	List() []model.Part
	ReplaceAll(records []model.Part)
}

// RawBackup is an uploaded backup document before sanitization. Backups are
// hand-editable files, so every record field is untrusted.
type RawBackup struct {
	ExportedAt any                      `json:"exportedAt"`
	Customers  []repository.RawCustomer `json:"customers"`
	Tickets    []repository.RawTicket   `json:"tickets"`
	Inventory  []repository.RawPart     `json:"inventory"`
}

type service struct {
	customers CustomerRepository
	tickets   TicketRepository
	parts     PartRepository
	now       func() time.Time
}

func NewBackupService(
	customers CustomerRepository,
	tickets TicketRepository,
	parts PartRepository,
) *service {
	return &service{
		customers: customers,
		tickets:   tickets,
		parts:     parts,
		now:       time.Now,
	}
}

func (s *service) Export(_ context.Context) model.Backup {
	return model.Backup{
		ExportedAt: s.now().UTC().Format(time.RFC3339),
		Customers:  s.customers.List(),
		Tickets:    s.tickets.List(),
		Inventory:  s.parts.List(),
	}
}

// Import replaces all three collections with the sanitized content of the
// uploaded document. A document carrying none of the collections is
// rejected and nothing changes.
func (s *service) Import(ctx context.Context, raw RawBackup) error {
	const op = "backup.service.Import"

	if raw.Customers == nil && raw.Tickets == nil && raw.Inventory == nil {
		logger.Error(ctx, "backup without collections")
		return fmt.Errorf("%s: %w: file di backup non valido", op, model.ErrValidation)
	}

	now := s.now()
	s.customers.ReplaceAll(repository.SanitizeCustomers(raw.Customers, now))
	s.tickets.ReplaceAll(repository.SanitizeTickets(raw.Tickets, now))
	s.parts.ReplaceAll(repository.SanitizeParts(raw.Inventory, now))

	logger.Info(ctx, "backup imported",
		logger.Int("customers", len(raw.Customers)),
		logger.Int("tickets", len(raw.Tickets)),
		logger.Int("inventory", len(raw.Inventory)),
	)
	return nil
}

// Reset restores the seed datasets in all three collections.
func (s *service) Reset(ctx context.Context) {
	s.customers.ReplaceAll(repository.SeedCustomers())
	s.tickets.ReplaceAll(repository.SeedTickets())
	s.parts.ReplaceAll(repository.SeedParts())
	logger.Info(ctx, "collections reset to seed data")
}
