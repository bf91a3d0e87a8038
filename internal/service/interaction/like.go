package interaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// ToggleLike likes the tweet for userID, or removes the like if one exists.
// The lookup and the write happen in one transaction.
func (s *Service) ToggleLike(ctx context.Context, tweetID, userID uuid.UUID) (*LikeResult, error) {
	var result *LikeResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Step 1: Existing like means unlike.
		existing, err := s.likes.GetByUserAndTweet(ctx, userID, tweetID)
		switch {
		case err == nil:
			// A concurrent unlike may have removed the row since the lookup;
			// the tweet ends up unliked either way.
			if err := s.likes.Delete(ctx, existing.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("delete like: %w", err)
			}
			result = &LikeResult{Like: existing, Liked: false}
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get like: %w", err)
		}

		// Step 2: The tweet must exist before it can be liked.
		if _, err := s.tweets.FindByID(ctx, tweetID); err != nil {
			return err
		}

		// Step 3: Insert. A concurrent like for the same pair wins the unique
		// key; both callers wanted the tweet liked, so return the winner's.
		created, err := s.likes.Create(ctx, &domain.Like{
			ID:        s.newID(),
			UserID:    userID,
			TweetID:   tweetID,
			CreatedAt: s.now(),
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			created, err = s.likes.GetByUserAndTweet(ctx, userID, tweetID)
		}
		if err != nil {
			return fmt.Errorf("create like: %w", err)
		}

		result = &LikeResult{Like: created, Liked: true}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("interaction.ToggleLike: %w", err)
	}

	s.log.InfoContext(ctx, "like toggled",
		slog.String("user_id", userID.String()),
		slog.String("tweet_id", tweetID.String()),
		slog.Bool("liked", result.Liked))

	return result, nil
}

// ListLikes returns the likes of a tweet in creation order.
func (s *Service) ListLikes(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error) {
	if _, err := s.tweets.FindByID(ctx, tweetID); err != nil {
		return nil, fmt.Errorf("interaction.ListLikes: %w", err)
	}

	likes, err := s.likes.ListByTweet(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("interaction.ListLikes: %w", err)
	}
	return likes, nil
}
