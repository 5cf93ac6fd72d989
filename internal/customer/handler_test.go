package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// failingRepository simulates a store outage, returning the same error for
// every operation.
type failingRepository struct{ err error }

func (r failingRepository) Create(context.Context, Customer) error { return r.err }
func (r failingRepository) List(context.Context) ([]Customer, error) {
	return nil, r.err
}
func (r failingRepository) Get(context.Context, string) (Customer, error) {
	return Customer{}, r.err
}

func postCustomer(t *testing.T, app *fiber.App, body fiber.Map) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodPost, "/clientes", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("POST /clientes: %v", err)
	}
	resp.Body.Close()
	return resp
}

func TestCreateStoreFailureIsInternal(t *testing.T) {
	app := fiber.New()
	repo := failingRepository{err: errors.New("connection refused to db host 10.0.0.5")}
	handler := NewHandler(NewService(repo))
	app.Post("/clientes", handler.Create)

	resp := postCustomer(t, app, fiber.Map{
		"nome":       "Maria Silva",
		"whatsapp":   "+5511999990001",
		"vencimento": 10,
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("store failure: expected 500, got %d", resp.StatusCode)
	}
}

func TestCreateBadBillingDayIsBadRequest(t *testing.T) {
	app := fiber.New()
	handler := NewHandler(NewService(NewMemoryRepository()))
	app.Post("/clientes", handler.Create)

	resp := postCustomer(t, app, fiber.Map{
		"nome":       "Maria Silva",
		"whatsapp":   "+5511999990001",
		"vencimento": 32,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad vencimento: expected 400, got %d", resp.StatusCode)
	}
}
