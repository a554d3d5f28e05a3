package repository

import (
	"context"
	"errors"

	"github.com/shopcore/user-orders-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the given userId.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateKey is returned when an insert violates the unique
	// constraint on userId or username.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines the persistence interface for user documents,
// keyed by the application-level userId (not the store's own identity).
//
// Insert hashes the password before the record is durably written; the
// duplicate check is delegated to the store's unique index so that
// check-then-insert behaves atomically for callers.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) error
	FindByUserID(ctx context.Context, userID int64) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	UpdatePartial(ctx context.Context, userID int64, fields entity.UserUpdate) (*entity.User, error)
	AppendOrder(ctx context.Context, userID int64, order entity.Order) (*entity.User, error)
	Delete(ctx context.Context, userID int64) (bool, error)
}
