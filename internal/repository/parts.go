package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/repository/kvstore"
)

type PartRepository struct {
	mu       sync.RWMutex
	store    kvstore.Store
	records  []model.Part
	writeErr error
}

func NewPartRepository(store kvstore.Store) *PartRepository {
	return &PartRepository{
		store:   store,
		records: loadParts(store),
	}
}

func loadParts(store kvstore.Store) []model.Part {
	raw, ok := store.Get(slotInventory)
	if !ok {
		return SeedParts()
	}

	var raws []RawPart
	if err := json.Unmarshal([]byte(raw), &raws); err != nil {
		return SeedParts()
	}
	return SanitizeParts(raws, time.Now())
}

func (r *PartRepository) List() []model.Part {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Part, len(r.records))
	copy(out, r.records)
	return out
}

func (r *PartRepository) ByID(id string) (model.Part, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.records {
		if p.ID == id {
			return p, true
		}
	}
	return model.Part{}, false
}

func (r *PartRepository) Add(p model.Part) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, p)
	r.persist()
}

func (r *PartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.records {
		if p.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			r.persist()
			return nil
		}
	}
	return model.ErrNotFound
}

// AdjustQty applies a stock delta under the repository lock. The quantity
// never goes below zero regardless of the decrement magnitude.
func (r *PartRepository) AdjustQty(id string, delta int) (model.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.records {
		if p.ID != id {
			continue
		}
		qty := p.Qty + delta
		if qty < 0 {
			qty = 0
		}
		r.records[i].Qty = qty
		r.persist()
		return r.records[i], nil
	}
	return model.Part{}, model.ErrNotFound
}

func (r *PartRepository) ReplaceAll(records []model.Part) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make([]model.Part, len(records))
	copy(r.records, records)
	r.persist()
}

func (r *PartRepository) Reset() {
	r.ReplaceAll(SeedParts())
}

func (r *PartRepository) StorageWarning() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.writeErr == nil {
		return ""
	}
	return storageWarning
}

func (r *PartRepository) persist() {
	data, err := json.Marshal(r.records)
	if err == nil {
		err = r.store.Set(slotInventory, string(data))
	}
	if err != nil {
		warnWriteFailed(slotInventory, err)
	}
	r.writeErr = err
}
