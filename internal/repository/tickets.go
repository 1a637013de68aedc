package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/re-fagiano/fixlab/internal/model"
	"github.com/re-fagiano/fixlab/internal/repository/kvstore"
)

type TicketRepository struct {
	mu       sync.RWMutex
	store    kvstore.Store
	records  []model.Ticket
	writeErr error
}

func NewTicketRepository(store kvstore.Store) *TicketRepository {
	return &TicketRepository{
		store:   store,
		records: loadTickets(store),
	}
}

func loadTickets(store kvstore.Store) []model.Ticket {
	raw, ok := store.Get(slotTickets)
	if !ok {
		return SeedTickets()
	}

	var raws []RawTicket
	if err := json.Unmarshal([]byte(raw), &raws); err != nil {
		return SeedTickets()
	}
	return SanitizeTickets(raws, time.Now())
}

func (r *TicketRepository) List() []model.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Ticket, len(r.records))
	copy(out, r.records)
	return out
}

func (r *TicketRepository) ByID(id string) (model.Ticket, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.records {
		if t.ID == id {
			return t, true
		}
	}
	return model.Ticket{}, false
}

func (r *TicketRepository) Add(t model.Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, t)
	r.persist()
}

func (r *TicketRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.records {
		if t.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			r.persist()
			return nil
		}
	}
	return model.ErrNotFound
}

func (r *TicketRepository) ReplaceAll(records []model.Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make([]model.Ticket, len(records))
	copy(r.records, records)
	r.persist()
}

func (r *TicketRepository) Reset() {
	r.ReplaceAll(SeedTickets())
}

func (r *TicketRepository) StorageWarning() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.writeErr == nil {
		return ""
	}
	return storageWarning
}

func (r *TicketRepository) persist() {
	data, err := json.Marshal(r.records)
	if err == nil {
		err = r.store.Set(slotTickets, string(data))
	}
	if err != nil {
		warnWriteFailed(slotTickets, err)
	}
	r.writeErr = err
}
