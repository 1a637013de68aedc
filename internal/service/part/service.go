package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

type PartRepository interface {
	List() []model.Part
	Add(p model.Part)
	Delete(id string) error
	AdjustQty(id string, delta int) (model.Part, error)
	StorageWarning() string
}

type service struct {
	repo PartRepository
}

func NewPartService(repo PartRepository) *service {
	return &service{repo: repo}
}

func (s *service) List(_ context.Context) []model.Part {
	return s.repo.List()
}

// LowStock returns the parts whose quantity dropped to the reorder
// threshold or below.
func (s *service) LowStock(_ context.Context) []model.Part {
	return lo.Filter(s.repo.List(), func(p model.Part, _ int) bool {
		return p.LowStock()
	})
}

func (s *service) Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error) {
	const op = "part.service.Create"
	log := logger.With(
		logger.String("name", params.Name),
	)

	name := strings.TrimSpace(params.Name)
	if name == "" {
		log.Error(ctx, "validation: empty part name")
		return nil, fmt.Errorf("%s: %w: il nome è obbligatorio", op, model.ErrValidation)
	}

	p := model.Part{
		ID:       model.NewID(),
		Name:     name,
		Location: strings.TrimSpace(params.Location),
		Qty:      max(params.Qty, 0),
		Price:    max(params.Price, 0),
		MinQty:   max(params.MinQty, 0),
	}
	s.repo.Add(p)

	return &p, nil
}

// UpdateStock applies a delta to a part's quantity, clamped at zero.
func (s *service) UpdateStock(ctx context.Context, id string, delta int) (*model.Part, error) {
	const op = "part.service.UpdateStock"
	log := logger.With(
		logger.String("part_id", id),
		logger.Int("delta", delta),
	)

	p, err := s.repo.AdjustQty(id, delta)
	if err != nil {
		log.Error(ctx, "repository adjust qty", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "part.service.Delete"

	if err := s.repo.Delete(id); err != nil {
		logger.Error(ctx, "repository delete part",
			logger.String("part_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) StorageWarning() string {
	return s.repo.StorageWarning()
}
