package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cobra-facil/cobra_facil/internal/payment"
)

// RegisterPaymentRoutes wires payment endpoints.
func RegisterPaymentRoutes(r fiber.Router, h *payment.Handler) {
	r.Post("/pagamentos", h.Create)
}
