package customer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolationCode = "23505"
	// listLimit caps the unfiltered listing so a misbehaving client cannot
	// pull the whole table in one response.
	listLimit = 100
)

// Repository persists customers.
type Repository interface {
	Create(ctx context.Context, customer Customer) error
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id string) (Customer, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed customer repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a customer. A duplicate whatsapp number maps to
// ErrWhatsAppTaken.
func (r *PostgresRepository) Create(ctx context.Context, customer Customer) error {
	customerID, err := uuid.Parse(customer.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO clientes (id, nome, whatsapp, vencimento, plano, endereco, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		customerID, customer.Name, customer.WhatsApp, customer.BillingDay,
		customer.Plan, customer.Address, customer.CreatedAt.UTC())
	if isUniqueViolation(err) {
		return ErrWhatsAppTaken
	}
	return err
}

// List returns customers ordered by name, capped at 100 rows.
func (r *PostgresRepository) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, whatsapp, vencimento, plano, endereco, created_at
        FROM clientes ORDER BY nome LIMIT $1`, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Get fetches a customer by id. Unknown or malformed ids map to ErrNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Customer, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return Customer{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, nome, whatsapp, vencimento, plano, endereco, created_at
        FROM clientes WHERE id = $1`, customerID)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return c, nil
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		c         Customer
	)
	if err := row.Scan(&id, &c.Name, &c.WhatsApp, &c.BillingDay, &c.Plan, &c.Address, &createdAt); err != nil {
		return Customer{}, err
	}
	c.ID = id.String()
	c.CreatedAt = createdAt.UTC()
	return c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
