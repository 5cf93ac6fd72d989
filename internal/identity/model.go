package identity

import "time"

// User represents a registered API user.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials carries a signup or login request.
type Credentials struct {
	Username string
	Password string
	Email    string
}
