package customer

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes customer HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a customer HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name       string `json:"nome"`
	WhatsApp   string `json:"whatsapp"`
	BillingDay int    `json:"vencimento"`
	Plan       string `json:"plano"`
	Address    string `json:"endereco"`
}

// Create registers a customer.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.WhatsApp == "" {
		return fiber.NewError(http.StatusBadRequest, "nome and whatsapp are required")
	}

	customer, err := h.service.Create(c.UserContext(), CreateInput{
		Name:       req.Name,
		WhatsApp:   req.WhatsApp,
		BillingDay: req.BillingDay,
		Plan:       req.Plan,
		Address:    req.Address,
	})
	if err != nil {
		if errors.Is(err, ErrWhatsAppTaken) {
			return fiber.NewError(http.StatusConflict, "whatsapp number already registered")
		}
		if errors.Is(err, ErrInvalidBillingDay) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(customer)
}

// List returns up to 100 customers.
func (h *Handler) List(c *fiber.Ctx) error {
	customers, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	if customers == nil {
		customers = []Customer{}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(customers),
		"data":    customers,
	})
}

// Get fetches one customer.
func (h *Handler) Get(c *fiber.Ctx) error {
	customer, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "customer not found")
		}
		return err
	}
	return c.Status(http.StatusOK).JSON(customer)
}
