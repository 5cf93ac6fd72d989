package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cobra-facil/cobra_facil/internal/customer"
	"github.com/cobra-facil/cobra_facil/internal/payment"
)

// RegisterCustomerRoutes wires customer endpoints, including the nested
// filtered payment listing.
func RegisterCustomerRoutes(r fiber.Router, h *customer.Handler, payments *payment.Handler) {
	r.Get("/clientes", h.List)
	r.Post("/clientes", h.Create)
	r.Get("/clientes/:id", h.Get)
	r.Get("/clientes/:id/pagamentos", payments.ListForCustomer)
}
