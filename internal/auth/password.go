package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// AdminCredential is the back-office login pair. When Hash is set it
// is verified with bcrypt; otherwise Password is compared directly,
// which matches the original single hardcoded credential.
type AdminCredential struct {
	Email    string
	Password string
	Hash     string
}

// Verify checks a submitted email/password against the credential.
func (c AdminCredential) Verify(email, password string) bool {
	if c.Email == "" || !strings.EqualFold(email, c.Email) {
		return false
	}
	if c.Hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(password)) == nil
	}
	return c.Password != "" && password == c.Password
}

// StoreAuthenticator implements Authenticator over the users
// collection. User passwords are compared exactly as stored: the
// existing users.json files hold plaintext values and this keeps the
// data files interchangeable with them.
type StoreAuthenticator struct {
	store storage.Store
	admin AdminCredential
	now   func() time.Time
}

var _ Authenticator = (*StoreAuthenticator)(nil)

// NewStoreAuthenticator creates an authenticator over the given store.
func NewStoreAuthenticator(store storage.Store, admin AdminCredential) *StoreAuthenticator {
	return &StoreAuthenticator{store: store, admin: admin, now: time.Now}
}

// Login checks the admin credential first, then the users collection
// by lowercased email and exact password match.
func (a *StoreAuthenticator) Login(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if a.admin.Verify(email, password) {
		return &Identity{
			User:  models.User{Name: "Admin", Email: strings.ToLower(a.admin.Email)},
			Admin: true,
		}, nil
	}

	users, err := a.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) && user.Password == password {
			return &Identity{User: user.Sanitize()}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Signup appends a new user after the uniqueness check and returns the
// sanitized record.
func (a *StoreAuthenticator) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	users, err := a.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, req.Email) {
			return nil, ErrEmailExists
		}
	}

	now := a.now()
	user := models.User{
		ID:        fmt.Sprintf("user-%d", now.UnixMilli()),
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Phone:     req.Phone,
		Password:  req.Password,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	users = append(users, user)
	if err := a.store.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	sanitized := user.Sanitize()
	return &sanitized, nil
}
