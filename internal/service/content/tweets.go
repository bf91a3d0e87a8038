package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// FindByID returns the tweet with the given id.
func (s *Service) FindByID(ctx context.Context, tweetID uuid.UUID) (*domain.Tweet, error) {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("content.FindByID: %w", tweetErr(err))
	}
	return tweet, nil
}

// DeleteByID deletes a tweet owned by requesterID. Its likes go with it.
// Returns ErrForbidden, without writing anything, if requesterID is not the
// author.
func (s *Service) DeleteByID(ctx context.Context, tweetID, requesterID uuid.UUID) error {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return fmt.Errorf("content.DeleteByID: %w", tweetErr(err))
	}

	if !tweet.IsAuthoredBy(requesterID) {
		return fmt.Errorf("content.DeleteByID: %w", domain.ErrForbidden)
	}

	if err := s.tweets.Delete(ctx, tweetID); err != nil {
		return fmt.Errorf("content.DeleteByID: %w", tweetErr(err))
	}

	s.log.InfoContext(ctx, "tweet deleted",
		slog.String("user_id", requesterID.String()),
		slog.String("tweet_id", tweetID.String()))

	return nil
}

// ListAll returns every top-level tweet, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Tweet, error) {
	tweets, err := s.tweets.ListTopLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.ListAll: %w", err)
	}
	return tweets, nil
}

// ListForUser returns the tweets userID wrote or retweeted, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	tweets, err := s.tweets.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("content.ListForUser: %w", err)
	}
	return tweets, nil
}

// ListLikedByUser returns the tweets userID liked, newest first.
func (s *Service) ListLikedByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	tweets, err := s.tweets.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("content.ListLikedByUser: %w", err)
	}
	return tweets, nil
}
