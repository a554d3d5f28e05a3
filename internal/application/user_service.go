package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/shopcore/user-orders-api/internal/domain/entity"
	repo "github.com/shopcore/user-orders-api/internal/domain/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrEmptyUpdate  = errors.New("empty update")
)

type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

// Create inserts a new user. The repository hashes the password before
// the write; a userId or username collision surfaces as ErrUserExists.
func (s *Service) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := s.Repo.Insert(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.UserID).Error("insert user failed")
		}
		return nil, err
	}
	return u, nil
}

// Retrieve returns all users.
func (s *Service) Retrieve(ctx context.Context) ([]entity.User, error) {
	return s.Repo.FindAll(ctx)
}

// FindByID returns the user with the given userId.
func (s *Service) FindByID(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update applies a partial update. An update with no fields set is
// rejected as ErrEmptyUpdate, which is distinct from a schema violation.
func (s *Service) Update(ctx context.Context, userID int64, fields entity.UserUpdate) (*entity.User, error) {
	if fields.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	u, err := s.Repo.UpdatePartial(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Delete removes the user. Deleting a missing userId is ErrUserNotFound,
// so a repeated delete reports failure rather than silently succeeding.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	deleted, err := s.Repo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// GetOrders returns just the orders sequence of a user; empty when the
// user has none.
func (s *Service) GetOrders(ctx context.Context, userID int64) ([]entity.Order, error) {
	u, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Orders == nil {
		return []entity.Order{}, nil
	}
	return u.Orders, nil
}

// AppendOrder appends one order to the user's orders sequence.
func (s *Service) AppendOrder(ctx context.Context, userID int64, order entity.Order) error {
	_, err := s.Repo.AppendOrder(ctx, userID, order)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// TotalOrderValue sums price * quantity over the user's orders; a user
// with no orders totals 0.
func (s *Service) TotalOrderValue(ctx context.Context, userID int64) (float64, error) {
	u, err := s.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, o := range u.Orders {
		total += o.Total()
	}
	return total, nil
}
