package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// ToggleRetweet adds userID to the tweet's retweeters, or removes it if it
// is already there. Returns the tweet after the change.
func (s *Service) ToggleRetweet(ctx context.Context, tweetID, userID uuid.UUID) (*domain.Tweet, error) {
	var (
		tweet     *domain.Tweet
		retweeted bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tweets.LockForUpdate(ctx, tweetID); err != nil {
			return fmt.Errorf("lock tweet: %w", tweetErr(err))
		}

		current, err := s.tweets.GetByID(ctx, tweetID)
		if err != nil {
			return fmt.Errorf("get tweet: %w", tweetErr(err))
		}

		if current.IsRetweetedBy(userID) {
			if err := s.tweets.RemoveRetweet(ctx, tweetID, userID); err != nil {
				return fmt.Errorf("remove retweet: %w", err)
			}
		} else {
			if err := s.tweets.AddRetweet(ctx, tweetID, userID); err != nil {
				return fmt.Errorf("add retweet: %w", authorErr(err))
			}
			retweeted = true
		}

		tweet, err = s.tweets.GetByID(ctx, tweetID)
		if err != nil {
			return fmt.Errorf("reload tweet: %w", tweetErr(err))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content.ToggleRetweet: %w", err)
	}

	s.log.InfoContext(ctx, "retweet toggled",
		slog.String("user_id", userID.String()),
		slog.String("tweet_id", tweetID.String()),
		slog.Bool("retweeted", retweeted))

	return tweet, nil
}
