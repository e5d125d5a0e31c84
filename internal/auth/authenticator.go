package auth

import (
	"context"
	"errors"

	"github.com/munchbox/munchbox/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailExists        = errors.New("user with this email already exists")
)

// Identity is a successful login result. The embedded user is always
// sanitized; the admin identity is synthetic and never stored.
type Identity struct {
	User  models.User
	Admin bool
}

// SignupRequest carries the fields of the registration form.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Authenticator defines the authentication boundary. The abstraction
// allows swapping the credential scheme without touching the HTTP
// layer.
type Authenticator interface {
	// Login verifies the credentials against the configured admin pair
	// and the users collection. Returns ErrInvalidCredentials on any
	// mismatch; the caller cannot tell which check failed.
	Login(ctx context.Context, email, password string) (*Identity, error)

	// Signup registers a new account. Email uniqueness is checked
	// case-insensitively before any write.
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
}
