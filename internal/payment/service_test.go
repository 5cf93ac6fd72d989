package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cobra-facil/cobra_facil/internal/customer"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setupService(t *testing.T) (*Service, customer.Customer) {
	t.Helper()
	customers := customer.NewService(customer.NewMemoryRepository())
	cust, err := customers.Create(context.Background(), customer.CreateInput{
		Name:       "Maria Silva",
		WhatsApp:   "+5511999990001",
		BillingDay: 10,
		Plan:       "mensal",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return NewService(NewMemoryRepository(), customers), cust
}

func seedPayments(t *testing.T, svc *Service, customerID string) {
	t.Helper()
	ctx := context.Background()
	seeds := []CreateInput{
		{CustomerID: customerID, Amount: 49.90, DueDate: date(2025, time.January, 10), Reference: "2025-01", Status: "pago"},
		{CustomerID: customerID, Amount: 49.90, DueDate: date(2025, time.February, 10), Reference: "2025-02", Status: "pago"},
		{CustomerID: customerID, Amount: 49.90, DueDate: date(2025, time.March, 10), Reference: "2025-03", Status: "pendente"},
		{CustomerID: customerID, Amount: 59.90, DueDate: date(2024, time.March, 10), Reference: "2024-03", Status: "pago"},
	}
	for _, seed := range seeds {
		if _, err := svc.Create(ctx, seed); err != nil {
			t.Fatalf("seed payment %s: %v", seed.Reference, err)
		}
	}
}

func TestListForCustomerOrdering(t *testing.T) {
	svc, cust := setupService(t)
	seedPayments(t, svc, cust.ID)

	payments, err := svc.ListForCustomer(context.Background(), cust.ID, ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payments) != 4 {
		t.Fatalf("expected 4 payments, got %d", len(payments))
	}
	for i := 1; i < len(payments); i++ {
		if payments[i].DueDate.After(payments[i-1].DueDate) {
			t.Fatalf("payments not ordered by due date descending: %v before %v",
				payments[i-1].DueDate, payments[i].DueDate)
		}
	}
}

func TestListForCustomerStatusFilter(t *testing.T) {
	svc, cust := setupService(t)
	seedPayments(t, svc, cust.ID)

	paid, err := svc.ListForCustomer(context.Background(), cust.ID, ListFilter{Status: "pago"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paid) != 3 {
		t.Fatalf("expected 3 paid payments, got %d", len(paid))
	}
	for _, p := range paid {
		if p.Status != "pago" {
			t.Fatalf("expected status pago, got %s", p.Status)
		}
	}
}

func TestListForCustomerCombinedFiltersNarrow(t *testing.T) {
	svc, cust := setupService(t)
	seedPayments(t, svc, cust.ID)
	ctx := context.Background()

	statusOnly, err := svc.ListForCustomer(ctx, cust.ID, ListFilter{Status: "pago"})
	if err != nil {
		t.Fatalf("status-only list: %v", err)
	}

	narrowed, err := svc.ListForCustomer(ctx, cust.ID, ListFilter{Status: "pago", Year: 2025, Month: 2})
	if err != nil {
		t.Fatalf("narrowed list: %v", err)
	}

	if len(narrowed) > len(statusOnly) {
		t.Fatalf("narrowed result (%d) larger than status-only result (%d)", len(narrowed), len(statusOnly))
	}
	if len(narrowed) != 1 || narrowed[0].Reference != "2025-02" {
		t.Fatalf("expected only 2025-02, got %+v", narrowed)
	}
	for _, p := range narrowed {
		found := false
		for _, q := range statusOnly {
			if q.ID == p.ID {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("narrowed payment %s missing from status-only result", p.ID)
		}
	}
}

func TestListForUnknownCustomer(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ListForCustomer(context.Background(), "3c6a8b52-0000-0000-0000-000000000000", ListFilter{})
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("expected customer.ErrNotFound, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, cust := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{CustomerID: cust.ID, Amount: 0, DueDate: date(2025, time.May, 1)}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for non-positive amount, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{CustomerID: cust.ID, Amount: 10}); !errors.Is(err, ErrMissingDueDate) {
		t.Fatalf("expected ErrMissingDueDate for missing due date, got %v", err)
	}

	created, err := svc.Create(ctx, CreateInput{CustomerID: cust.ID, Amount: 10, DueDate: date(2025, time.May, 1), Reference: "2025-05"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected default status %q, got %q", StatusPending, created.Status)
	}
}
