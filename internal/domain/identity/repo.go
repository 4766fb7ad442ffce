package identity

import (
	"context"
	"errors"
)

// ErrEmailTaken is returned when signing up with an already registered email.
var ErrEmailTaken = errors.New("email already registered")

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// Repository is the persistence interface for user accounts.
type Repository interface {
	// Create inserts the user. Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
