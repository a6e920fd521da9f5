package repository

import (
	"context"
	"errors"

	"github.com/reelstream/reelstream/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a create collides with an existing email.
	// The storage layer's unique constraint is the authoritative guard; any
	// pre-check in the application layer only exists for the friendly path.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
