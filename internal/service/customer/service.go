package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

type CustomerRepository interface {
	List() []model.Customer
	Add(c model.Customer)
	Delete(id string) error
	StorageWarning() string
}

type service struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *service {
	return &service{repo: repo}
}

func (s *service) List(_ context.Context) []model.Customer {
	return s.repo.List()
}

func (s *service) Create(ctx context.Context, params model.CreateCustomerParams) (*model.Customer, error) {
	const op = "customer.service.Create"
	log := logger.With(
		logger.String("name", params.Name),
	)

	name := strings.TrimSpace(params.Name)
	if name == "" {
		log.Error(ctx, "validation: empty customer name")
		return nil, fmt.Errorf("%s: %w: il nome è obbligatorio", op, model.ErrValidation)
	}

	c := model.Customer{
		ID:      model.NewID(),
		Name:    name,
		Email:   strings.TrimSpace(params.Email),
		Phone:   strings.TrimSpace(params.Phone),
		Address: strings.TrimSpace(params.Address),
	}
	s.repo.Add(c)

	return &c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "customer.service.Delete"

	if err := s.repo.Delete(id); err != nil {
		logger.Error(ctx, "repository delete customer",
			logger.String("customer_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) StorageWarning() string {
	return s.repo.StorageWarning()
}
