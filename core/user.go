package core

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username,omitempty"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

type UserStore interface {
	// Create inserts the user together with its initial account.
	// Returns ErrUserExists if the username is already taken.
	Create(ctx context.Context, user *User, account *Account) error
	FindByUsername(ctx context.Context, username string) (*User, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (*User, *Account, error)
	// Login returns a signed session token on success.
	Login(ctx context.Context, username, password string) (string, error)
}
