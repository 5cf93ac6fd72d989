package payment

import "time"

// Default status for newly created payments awaiting settlement.
const StatusPending = "pendente"

// Payment is a single recurring charge raised against a customer.
type Payment struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"cliente_id"`
	Amount     float64   `json:"valor"`
	DueDate    time.Time `json:"data_vencimento"`
	Reference  string    `json:"referencia"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
