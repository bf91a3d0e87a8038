// Package social implements the follower graph and user profile operations.
package social

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// userRepo defines the user repository interface needed by social service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)
	LockForUpdate(ctx context.Context, ids ...uuid.UUID) error
	AddFollower(ctx context.Context, userID, followerID uuid.UUID) error
	RemoveFollower(ctx context.Context, userID, followerID uuid.UUID) error
	AddFollowing(ctx context.Context, userID, followingID uuid.UUID) error
	RemoveFollowing(ctx context.Context, userID, followingID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by social service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the social graph operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
}

// NewService creates a new social graph service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "social"),
		users: users,
		tx:    tx,
	}
}
