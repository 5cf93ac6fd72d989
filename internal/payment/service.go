package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cobra-facil/cobra_facil/internal/customer"
)

// Service exposes payment operations. Listings verify the customer exists
// before querying, so an unknown customer is a not-found rather than an
// empty list.
type Service struct {
	repo      Repository
	customers *customer.Service
}

// NewService builds a payment service instance.
func NewService(repo Repository, customers *customer.Service) *Service {
	return &Service{repo: repo, customers: customers}
}

// CreateInput captures data required to raise a payment.
type CreateInput struct {
	CustomerID string
	Amount     float64
	DueDate    time.Time
	Reference  string
	Status     string
}

// Create raises a payment against an existing customer.
func (s *Service) Create(ctx context.Context, input CreateInput) (Payment, error) {
	if input.Amount <= 0 {
		return Payment{}, ErrInvalidAmount
	}
	if input.DueDate.IsZero() {
		return Payment{}, ErrMissingDueDate
	}

	// The store's foreign key is the backstop; checking here gives memory
	// backends the same behavior.
	if _, err := s.customers.Get(ctx, input.CustomerID); err != nil {
		return Payment{}, err
	}

	status := input.Status
	if status == "" {
		status = StatusPending
	}

	payment := Payment{
		ID:         uuid.New().String(),
		CustomerID: input.CustomerID,
		Amount:     input.Amount,
		DueDate:    input.DueDate,
		Reference:  input.Reference,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return Payment{}, err
	}

	return payment, nil
}

// ListForCustomer returns the customer's payments narrowed by the filter,
// newest due date first. The existence check runs first: a customer that
// does not exist yields customer.ErrNotFound, never an empty list.
func (s *Service) ListForCustomer(ctx context.Context, customerID string, filter ListFilter) ([]Payment, error) {
	if _, err := s.customers.Get(ctx, customerID); err != nil {
		return nil, err
	}
	return s.repo.ListByCustomer(ctx, customerID, filter)
}
