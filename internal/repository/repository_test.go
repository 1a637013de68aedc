package repository

import (
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/repository/kvstore"
)

func TestCustomerRepositoryLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty store falls back to seed data", func(t *testing.T) {
		t.Parallel()

		repo := NewCustomerRepository(kvstore.NewMemoryStore())
		assert.Equal(t, SeedCustomers(), repo.List())
	})

	t.Run("corrupt slot falls back to seed data", func(t *testing.T) {
		t.Parallel()

		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set("customers", "{not json"))

		repo := NewCustomerRepository(store)
		assert.Equal(t, SeedCustomers(), repo.List())
	})

	t.Run("stored records are sanitized on load", func(t *testing.T) {
		t.Parallel()

		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set("customers", `[{"name":"Maria","email":42}]`))

		repo := NewCustomerRepository(store)

		records := repo.List()
		require.Len(t, records, 1)
		assert.Equal(t, "Maria", records[0].Name)
		assert.NotEmpty(t, records[0].ID)
		assert.Empty(t, records[0].Email)
	})
}

func TestCustomerRepositoryMutations(t *testing.T) {
	t.Parallel()

	t.Run("add persists the full collection", func(t *testing.T) {
		t.Parallel()

		store := kvstore.NewMemoryStore()
		repo := NewCustomerRepository(store)

		c := model.Customer{ID: "c-new", Name: gofakeit.Name()}
		repo.Add(c)

		raw, ok := store.Get("customers")
		require.True(t, ok)

		var persisted []model.Customer
		require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
		assert.Len(t, persisted, len(SeedCustomers())+1)
		assert.Equal(t, c, persisted[len(persisted)-1])
	})

	t.Run("delete unknown id returns not found", func(t *testing.T) {
		t.Parallel()

		repo := NewCustomerRepository(kvstore.NewMemoryStore())
		assert.ErrorIs(t, repo.Delete("missing"), model.ErrNotFound)
	})

	t.Run("delete removes only the matching record", func(t *testing.T) {
		t.Parallel()

		repo := NewCustomerRepository(kvstore.NewMemoryStore())
		require.NoError(t, repo.Delete("1"))

		records := repo.List()
		require.Len(t, records, 1)
		assert.Equal(t, "2", records[0].ID)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		t.Parallel()

		repo := NewCustomerRepository(kvstore.NewMemoryStore())

		records := repo.List()
		records[0].Name = "mutated"

		assert.Equal(t, SeedCustomers()[0].Name, repo.List()[0].Name)
	})
}

func TestStorageWarning(t *testing.T) {
	t.Parallel()

	t.Run("failed write raises the warning and keeps the record", func(t *testing.T) {
		t.Parallel()

		store := kvstore.NewMemoryStore()
		store.WriteErr = kvstore.ErrWriteDisabled

		repo := NewCustomerRepository(store)
		repo.Add(model.Customer{ID: "c-mem", Name: "Solo Memoria"})

		assert.NotEmpty(t, repo.StorageWarning())

		_, found := repo.ByID("c-mem")
		assert.True(t, found)
	})

	t.Run("successful write clears the warning", func(t *testing.T) {
		t.Parallel()

		store := kvstore.NewMemoryStore()
		store.WriteErr = kvstore.ErrWriteDisabled

		repo := NewCustomerRepository(store)
		repo.Add(model.Customer{ID: "c1", Name: "X"})
		require.NotEmpty(t, repo.StorageWarning())

		store.WriteErr = nil
		repo.Add(model.Customer{ID: "c2", Name: "Y"})

		assert.Empty(t, repo.StorageWarning())
	})
}

func TestTicketRepository(t *testing.T) {
	t.Parallel()

	t.Run("empty store falls back to seed data", func(t *testing.T) {
		t.Parallel()

		repo := NewTicketRepository(kvstore.NewMemoryStore())

		records := repo.List()
		require.Len(t, records, 2)
		assert.Equal(t, model.StatusOpen, records[0].Status)
		assert.Equal(t, model.StatusInProgress, records[1].Status)
	})

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		repo := NewTicketRepository(kvstore.NewMemoryStore())

		got, ok := repo.ByID("101")
		require.True(t, ok)
		assert.Equal(t, "Lavatrice non scarica", got.Subject)

		_, ok = repo.ByID("999")
		assert.False(t, ok)
	})

	t.Run("reset restores the seed dataset", func(t *testing.T) {
		t.Parallel()

		repo := NewTicketRepository(kvstore.NewMemoryStore())
		require.NoError(t, repo.Delete("101"))
		require.NoError(t, repo.Delete("102"))
		require.Empty(t, repo.List())

		repo.Reset()
		assert.Len(t, repo.List(), 2)
	})
}

func TestPartRepositoryAdjustQty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		partID  string
		delta   int
		wantQty int
		wantErr error
	}{
		{name: "increment", partID: "p1", delta: 2, wantQty: 5},
		{name: "decrement", partID: "p2", delta: -3, wantQty: 7},
		{name: "decrement clamps at zero", partID: "p1", delta: -10, wantQty: 0},
		{name: "unknown part", partID: "missing", delta: 1, wantErr: model.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewPartRepository(kvstore.NewMemoryStore())

			got, err := repo.AdjustQty(tt.partID, tt.delta)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, got.Qty)

			stored, ok := repo.ByID(tt.partID)
			require.True(t, ok)
			assert.Equal(t, tt.wantQty, stored.Qty)
		})
	}
}
