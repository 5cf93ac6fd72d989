package payment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cobra-facil/cobra_facil/internal/customer"
)

const dueDateLayout = "2006-01-02"

// Handler exposes payment HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a payment HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	CustomerID string  `json:"cliente_id"`
	Amount     float64 `json:"valor"`
	DueDate    string  `json:"data_vencimento"`
	Reference  string  `json:"referencia"`
	Status     string  `json:"status"`
}

// Create raises a payment.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.CustomerID == "" || req.DueDate == "" {
		return fiber.NewError(http.StatusBadRequest, "cliente_id and data_vencimento are required")
	}

	dueDate, err := time.Parse(dueDateLayout, req.DueDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "data_vencimento must use the YYYY-MM-DD format")
	}

	payment, err := h.service.Create(c.UserContext(), CreateInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		DueDate:    dueDate,
		Reference:  req.Reference,
		Status:     req.Status,
	})
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return fiber.NewError(http.StatusBadRequest, "cliente_id does not reference an existing customer")
		}
		if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrMissingDueDate) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(payment)
}

// ListForCustomer lists a customer's payments, optionally narrowed by
// status, year and month query parameters.
func (h *Handler) ListForCustomer(c *fiber.Ctx) error {
	filter := ListFilter{Status: c.Query("status")}

	var err error
	if filter.Year, err = intQuery(c, "year"); err != nil {
		return fiber.NewError(http.StatusBadRequest, "year must be an integer")
	}
	if filter.Month, err = intQuery(c, "month"); err != nil {
		return fiber.NewError(http.StatusBadRequest, "month must be an integer")
	}

	payments, err := h.service.ListForCustomer(c.UserContext(), c.Params("id"), filter)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "customer not found")
		}
		return err
	}
	if payments == nil {
		payments = []Payment{}
	}
	return c.Status(http.StatusOK).JSON(payments)
}

// intQuery parses an optional integer query parameter. An absent or empty
// parameter yields zero; a malformed one is an error rather than a silent
// zero, so a mistyped filter never widens the listing.
func intQuery(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
