// Package interaction implements likes.
package interaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// likeRepo defines the like repository interface needed by interaction service.
type likeRepo interface {
	GetByUserAndTweet(ctx context.Context, userID, tweetID uuid.UUID) (*domain.Like, error)
	Create(ctx context.Context, l *domain.Like) (*domain.Like, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTweet(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error)
}

// tweetFinder resolves tweets; satisfied by the content service.
type tweetFinder interface {
	FindByID(ctx context.Context, tweetID uuid.UUID) (*domain.Tweet, error)
}

// txManager defines the transaction manager interface needed by interaction service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements like operations.
type Service struct {
	log    *slog.Logger
	likes  likeRepo
	tweets tweetFinder
	tx     txManager
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewService creates a new interaction service instance.
func NewService(logger *slog.Logger, likes likeRepo, tweets tweetFinder, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "interaction"),
		likes:  likes,
		tweets: tweets,
		tx:     tx,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.New,
	}
}

// LikeResult is returned by ToggleLike. Liked is true when the call left the
// tweet liked; Like is then the like in place, otherwise the removed one.
type LikeResult struct {
	Like  *domain.Like
	Liked bool
}
