package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cobra-facil/cobra_facil/internal/customer"
)

// failingRepository simulates a store outage for payment writes and reads.
type failingRepository struct{ err error }

func (r failingRepository) Create(context.Context, Payment) error { return r.err }
func (r failingRepository) ListByCustomer(context.Context, string, ListFilter) ([]Payment, error) {
	return nil, r.err
}

func newHandlerApp(t *testing.T, repo Repository) (*fiber.App, customer.Customer) {
	t.Helper()
	customers := customer.NewService(customer.NewMemoryRepository())
	cust, err := customers.Create(context.Background(), customer.CreateInput{
		Name:       "Maria Silva",
		WhatsApp:   "+5511999990001",
		BillingDay: 10,
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	handler := NewHandler(NewService(repo, customers))
	app := fiber.New()
	app.Post("/pagamentos", handler.Create)
	app.Get("/clientes/:id/pagamentos", handler.ListForCustomer)
	return app, cust
}

func testRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	resp.Body.Close()
	return resp
}

func TestCreateStoreFailureIsInternal(t *testing.T) {
	repo := failingRepository{err: errors.New("connection refused to db host 10.0.0.5")}
	app, cust := newHandlerApp(t, repo)

	resp := testRequest(t, app, fiber.MethodPost, "/pagamentos", fiber.Map{
		"cliente_id":      cust.ID,
		"valor":           49.90,
		"data_vencimento": "2025-01-10",
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("store failure: expected 500, got %d", resp.StatusCode)
	}
}

func TestListRejectsMalformedYearAndMonth(t *testing.T) {
	app, cust := newHandlerApp(t, NewMemoryRepository())

	resp := testRequest(t, app, fiber.MethodGet, "/clientes/"+cust.ID+"/pagamentos?year=abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed year: expected 400, got %d", resp.StatusCode)
	}

	resp = testRequest(t, app, fiber.MethodGet, "/clientes/"+cust.ID+"/pagamentos?month=1x", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed month: expected 400, got %d", resp.StatusCode)
	}

	resp = testRequest(t, app, fiber.MethodGet, "/clientes/"+cust.ID+"/pagamentos?year=2025&month=2", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("well-formed filters: expected 200, got %d", resp.StatusCode)
	}
}
