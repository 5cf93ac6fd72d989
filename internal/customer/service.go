package customer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service exposes customer operations.
type Service struct {
	repo Repository
}

// NewService builds a customer service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures data required to register a customer.
type CreateInput struct {
	Name       string
	WhatsApp   string
	BillingDay int
	Plan       string
	Address    string
}

// Create registers a customer.
func (s *Service) Create(ctx context.Context, input CreateInput) (Customer, error) {
	if input.BillingDay < 1 || input.BillingDay > 31 {
		return Customer{}, ErrInvalidBillingDay
	}

	customer := Customer{
		ID:         uuid.New().String(),
		Name:       input.Name,
		WhatsApp:   input.WhatsApp,
		BillingDay: input.BillingDay,
		Plan:       input.Plan,
		Address:    input.Address,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// List returns up to 100 customers.
func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

// Get fetches a single customer by id.
func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	return s.repo.Get(ctx, id)
}
