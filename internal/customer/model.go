package customer

import "time"

// Customer is a billed client identified by a unique WhatsApp number.
// BillingDay is the day of month the recurring charge falls due.
type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"nome"`
	WhatsApp   string    `json:"whatsapp"`
	BillingDay int       `json:"vencimento"`
	Plan       string    `json:"plano"`
	Address    string    `json:"endereco"`
	CreatedAt  time.Time `json:"created_at"`
}
