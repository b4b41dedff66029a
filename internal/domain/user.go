package domain

import (
	"context"
	"time"
)

// User is a site account.
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// PasswordHasher hashes and verifies salted passwords.
type PasswordHasher interface {
	Hash(salt, password string) (string, error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues session tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the user id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// UserRepository reads users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// AuthService checks credentials.
type AuthService interface {
	// Authenticate returns the active user matching the credentials, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*User, error)
	// Login authenticates and issues a session token.
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}
