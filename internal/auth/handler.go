package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cobra-facil/cobra_facil/internal/identity"
)

// Handler exposes the signup/login/logout endpoints.
type Handler struct {
	ids     *identity.Service
	tokens  *TokenService
	revoked RevocationList
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(ids *identity.Service, tokens *TokenService, revoked RevocationList) *Handler {
	return &Handler{ids: ids, tokens: tokens, revoked: revoked}
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Signup registers a new user.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password are required")
	}

	user, err := h.ids.Signup(c.UserContext(), identity.Credentials{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, identity.ErrUsernameTaken) {
			return fiber.NewError(http.StatusConflict, "username already exists")
		}
		if errors.Is(err, identity.ErrPasswordTooShort) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "user created",
		"userId":  user.ID,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates credentials and issues a session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password are required")
	}

	user, err := h.ids.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"token": token})
}

// Logout revokes the bearer token for the remainder of its lifetime. The
// auth guard has already verified it and stashed it in Locals.
func (h *Handler) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("token").(string)
	if raw == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
	}

	ttl := time.Duration(0)
	if claims, err := h.tokens.Verify(raw); err == nil {
		ttl = time.Until(claims.ExpiresAt)
	}

	if err := h.revoked.Revoke(c.UserContext(), raw, ttl); err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "logged out"})
}
