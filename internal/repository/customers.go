package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/repository/kvstore"
)

type CustomerRepository struct {
	mu       sync.RWMutex
	store    kvstore.Store
	records  []model.Customer
	writeErr error
}

func NewCustomerRepository(store kvstore.Store) *CustomerRepository {
	return &CustomerRepository{
		store:   store,
		records: loadCustomers(store),
	}
}

func loadCustomers(store kvstore.Store) []model.Customer {
	raw, ok := store.Get(slotCustomers)
	if !ok {
		return SeedCustomers()
	}

	var raws []RawCustomer
	if err := json.Unmarshal([]byte(raw), &raws); err != nil {
		return SeedCustomers()
	}
	return SanitizeCustomers(raws, time.Now())
}

func (r *CustomerRepository) List() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Customer, len(r.records))
	copy(out, r.records)
	return out
}

func (r *CustomerRepository) ByID(id string) (model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.records {
		if c.ID == id {
			return c, true
		}
	}
	return model.Customer{}, false
}

func (r *CustomerRepository) Add(c model.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, c)
	r.persist()
}

// Delete removes a customer. Tickets referencing it are left untouched.
func (r *CustomerRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.records {
		if c.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			r.persist()
			return nil
		}
	}
	return model.ErrNotFound
}

func (r *CustomerRepository) ReplaceAll(records []model.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make([]model.Customer, len(records))
	copy(r.records, records)
	r.persist()
}

func (r *CustomerRepository) Reset() {
	r.ReplaceAll(SeedCustomers())
}

// StorageWarning returns the banner text for the last failed write, or "".
func (r *CustomerRepository) StorageWarning() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.writeErr == nil {
		return ""
	}
	return storageWarning
}

func (r *CustomerRepository) persist() {
	data, err := json.Marshal(r.records)
	if err == nil {
		err = r.store.Set(slotCustomers, string(data))
	}
	if err != nil {
		warnWriteFailed(slotCustomers, err)
	}
	r.writeErr = err
}
