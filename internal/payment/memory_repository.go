package payment

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	payments []Payment
}

// NewMemoryRepository builds an in-memory payment store for tests and
// database-less development. It applies the same filter semantics as the
// Postgres listing query.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, payment Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, payment)
	return nil
}

func (r *memoryRepository) ListByCustomer(_ context.Context, customerID string, filter ListFilter) ([]Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Payment
	for _, p := range r.payments {
		if p.CustomerID != customerID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Year != 0 && p.DueDate.Year() != filter.Year {
			continue
		}
		if filter.Month != 0 && int(p.DueDate.Month()) != filter.Month {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].DueDate.After(matched[j].DueDate) })
	return matched, nil
}
