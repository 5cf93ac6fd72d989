package payment

import "errors"

var (
	// ErrInvalidAmount rejects a zero or negative valor.
	ErrInvalidAmount = errors.New("valor must be positive")
	// ErrMissingDueDate rejects a payment without a data_vencimento.
	ErrMissingDueDate = errors.New("data_vencimento is required")
)
