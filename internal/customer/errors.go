package customer

import "errors"

var (
	// ErrWhatsAppTaken signals a uniqueness violation on the whatsapp column.
	ErrWhatsAppTaken = errors.New("whatsapp number already registered")
	// ErrNotFound signals that no customer matched the lookup.
	ErrNotFound = errors.New("customer not found")
	// ErrInvalidBillingDay rejects a vencimento outside a calendar month.
	ErrInvalidBillingDay = errors.New("vencimento must be a day of month between 1 and 31")
)
