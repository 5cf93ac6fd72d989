package identity

import "errors"

var (
	// ErrUsernameTaken signals a uniqueness violation on the username column.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrNotFound signals that no user matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooShort rejects passwords under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)
