// Package content implements tweets, replies and retweets.
package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// tweetRepo defines the tweet repository interface needed by content service.
type tweetRepo interface {
	Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
	AddReply(ctx context.Context, parentID, replyID uuid.UUID) error
	AddRetweet(ctx context.Context, tweetID, userID uuid.UUID) error
	RemoveRetweet(ctx context.Context, tweetID, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListTopLevel(ctx context.Context) ([]domain.Tweet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
	ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
}

// txManager defines the transaction manager interface needed by content service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// clock defines the time source needed by content service.
type clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Service implements content operations.
type Service struct {
	log    *slog.Logger
	tweets tweetRepo
	tx     txManager
	clock  clock
	newID  func() uuid.UUID
}

// NewService creates a new content service instance.
func NewService(logger *slog.Logger, tweets tweetRepo, tx txManager, clk clock) *Service {
	return &Service{
		log:    logger.With("service", "content"),
		tweets: tweets,
		tx:     tx,
		clock:  clk,
		newID:  uuid.New,
	}
}
