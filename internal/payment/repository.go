package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cobra-facil/cobra_facil/internal/customer"
)

const foreignKeyViolationCode = "23503"

// Repository persists payments.
type Repository interface {
	Create(ctx context.Context, payment Payment) error
	ListByCustomer(ctx context.Context, customerID string, filter ListFilter) ([]Payment, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed payment repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a payment. The store enforces the customer reference; a
// foreign-key violation maps to customer.ErrNotFound.
func (r *PostgresRepository) Create(ctx context.Context, payment Payment) error {
	paymentID, err := uuid.Parse(payment.ID)
	if err != nil {
		return err
	}
	customerID, err := uuid.Parse(payment.CustomerID)
	if err != nil {
		return customer.ErrNotFound
	}
	_, err = r.db.Exec(ctx, `INSERT INTO pagamentos (id, cliente_id, valor, data_vencimento, referencia, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		paymentID, customerID, payment.Amount, payment.DueDate, payment.Reference,
		payment.Status, payment.CreatedAt.UTC())
	if isForeignKeyViolation(err) {
		return customer.ErrNotFound
	}
	return err
}

// ListByCustomer runs the filtered listing query, ordered by due date
// descending.
func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID string, filter ListFilter) ([]Payment, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, customer.ErrNotFound
	}

	query, args := buildListQuery(id, filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var (
			pid       uuid.UUID
			cid       uuid.UUID
			createdAt time.Time
			p         Payment
		)
		if err := rows.Scan(&pid, &cid, &p.Amount, &p.DueDate, &p.Reference, &p.Status, &createdAt); err != nil {
			return nil, err
		}
		p.ID = pid.String()
		p.CustomerID = cid.String()
		p.CreatedAt = createdAt.UTC()
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
