package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/cobra-facil/cobra_facil/internal/auth"
	"github.com/cobra-facil/cobra_facil/internal/config"
	"github.com/cobra-facil/cobra_facil/internal/customer"
	"github.com/cobra-facil/cobra_facil/internal/identity"
	"github.com/cobra-facil/cobra_facil/internal/middleware"
	"github.com/cobra-facil/cobra_facil/internal/payment"
)

// Deps aggregates shared dependencies required to wire routes. A nil DB
// selects the in-memory repositories; a nil Cache selects the in-process
// revocation list and disables idempotent replay.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	tokens, err := auth.NewTokenService(d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	if err != nil {
		return err
	}

	var revoked auth.RevocationList
	if d.Cache != nil {
		revoked = auth.NewRedisRevocationList(d.Cache)
	} else {
		revoked = auth.NewMemoryRevocationList()
	}

	var userRepo identity.Repository
	var customerRepo customer.Repository
	var paymentRepo payment.Repository
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
		customerRepo = customer.NewPostgresRepository(d.DB)
		paymentRepo = payment.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
		customerRepo = customer.NewMemoryRepository()
		paymentRepo = payment.NewMemoryRepository()
	}

	identitySvc := identity.NewService(userRepo)
	customerSvc := customer.NewService(customerRepo)
	paymentSvc := payment.NewService(paymentRepo, customerSvc)

	authHandler := auth.NewHandler(identitySvc, tokens, revoked)
	customerHandler := customer.NewHandler(customerSvc)
	paymentHandler := payment.NewHandler(paymentSvc)

	RegisterHealthRoutes(app, d)

	// Public routes.
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Protected routes. Registration order matters: the guard applies only
	// to routes registered on this group.
	guard := middleware.RequireAuth(tokens, revoked)
	protected := app.Group("", guard)
	protected.Post("/logout", authHandler.Logout)
	RegisterCustomerRoutes(protected, customerHandler, paymentHandler)
	RegisterPaymentRoutes(protected, paymentHandler)

	return nil
}
