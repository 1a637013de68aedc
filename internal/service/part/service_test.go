package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/repository"
	"github.com/re-fagiano/fixlab/internal/repository/kvstore"
)

func newTestService(t *testing.T) (*service, *repository.PartRepository) {
	t.Helper()

	repo := repository.NewPartRepository(kvstore.NewMemoryStore())
	return NewPartService(repo), repo
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		params model.CreatePartParams
		assert func(t *testing.T, res *model.Part, err error)
	}

	tests := []testCase{
		{
			name:   "validation error: empty name",
			params: model.CreatePartParams{Name: "  ", Qty: 5},
			assert: func(t *testing.T, res *model.Part, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "negative numbers clamp to zero",
			params: model.CreatePartParams{
				Name:   "Guarnizione Oblo",
				Qty:    -3,
				Price:  -10.5,
				MinQty: -1,
			},
			assert: func(t *testing.T, res *model.Part, err error) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Zero(t, res.Qty)
				assert.Zero(t, res.Price)
				assert.Zero(t, res.MinQty)
			},
		},
		{
			name: "success",
			params: model.CreatePartParams{
				Name:     " Guarnizione Oblo ",
				Location: " CF-03-B ",
				Qty:      4,
				Price:    18.9,
				MinQty:   2,
			},
			assert: func(t *testing.T, res *model.Part, err error) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "Guarnizione Oblo", res.Name)
				assert.Equal(t, "CF-03-B", res.Location)
				assert.Equal(t, 4, res.Qty)
				assert.InDelta(t, 18.9, res.Price, 0.0001)
				assert.Equal(t, 2, res.MinQty)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestService(t)

			res, err := svc.Create(context.Background(), tt.params)
			tt.assert(t, res, err)
		})
	}
}

func TestServiceUpdateStock(t *testing.T) {
	t.Parallel()

	t.Run("decrement below zero clamps", func(t *testing.T) {
		t.Parallel()

		svc, repo := newTestService(t)

		// seed p1 starts at qty 3
		res, err := svc.UpdateStock(context.Background(), "p1", -10)
		require.NoError(t, err)
		assert.Zero(t, res.Qty)

		stored, ok := repo.ByID("p1")
		require.True(t, ok)
		assert.Zero(t, stored.Qty)
	})

	t.Run("increment", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		res, err := svc.UpdateStock(context.Background(), "p2", 5)
		require.NoError(t, err)
		assert.Equal(t, 15, res.Qty)
	})

	t.Run("unknown part", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, err := svc.UpdateStock(context.Background(), "missing", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestServiceLowStock(t *testing.T) {
	t.Parallel()

	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set("inventory", `[
		{"id":"a","name":"Sotto soglia","qty":1,"minQty":5},
		{"id":"b","name":"Alla soglia","qty":5,"minQty":5},
		{"id":"c","name":"Sopra soglia","qty":6,"minQty":5}
	]`))

	svc := NewPartService(repository.NewPartRepository(store))

	low := svc.LowStock(context.Background())
	require.Len(t, low, 2)
	assert.Equal(t, "a", low[0].ID)
	assert.Equal(t, "b", low[1].ID)
}
