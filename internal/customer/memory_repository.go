package customer

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu        sync.RWMutex
	customers map[string]Customer
	whatsapps map[string]struct{}
}

// NewMemoryRepository builds an in-memory customer store for tests and
// database-less development.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		customers: make(map[string]Customer),
		whatsapps: make(map[string]struct{}),
	}
}

func (r *memoryRepository) Create(_ context.Context, customer Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.whatsapps[customer.WhatsApp]; exists {
		return ErrWhatsAppTaken
	}
	r.customers[customer.ID] = customer
	r.whatsapps[customer.WhatsApp] = struct{}{}
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customers := make([]Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	if len(customers) > listLimit {
		customers = customers[:listLimit]
	}
	return customers, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return c, nil
}
