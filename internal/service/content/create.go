package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// CreateTweet publishes a top-level tweet by authorID.
func (s *Service) CreateTweet(ctx context.Context, authorID uuid.UUID, input CreateTweetInput) (*domain.Tweet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tweet, err := s.tweets.Create(ctx, &domain.Tweet{
		ID:        s.newID(),
		Content:   input.Content,
		Image:     input.Image,
		Video:     input.Video,
		AuthorID:  authorID,
		CreatedAt: s.clock.Now(),
		IsTweet:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("content.CreateTweet: %w", authorErr(err))
	}

	s.log.InfoContext(ctx, "tweet created",
		slog.String("user_id", authorID.String()),
		slog.String("tweet_id", tweet.ID.String()))

	return tweet, nil
}

// CreateReply publishes a reply to input.ParentID. The reply and the link
// from the parent are written in one transaction.
func (s *Service) CreateReply(ctx context.Context, authorID uuid.UUID, input CreateReplyInput) (*domain.Tweet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var reply *domain.Tweet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Step 1: Parent must exist; lock it while its reply list changes.
		if err := s.tweets.LockForUpdate(ctx, input.ParentID); err != nil {
			return fmt.Errorf("lock parent: %w", tweetErr(err))
		}

		// Step 2: Insert the reply.
		parentID := input.ParentID
		created, err := s.tweets.Create(ctx, &domain.Tweet{
			ID:         s.newID(),
			Content:    input.Content,
			Image:      input.Image,
			AuthorID:   authorID,
			CreatedAt:  s.clock.Now(),
			IsReply:    true,
			ReplyForID: &parentID,
		})
		if err != nil {
			return fmt.Errorf("create reply: %w", authorErr(err))
		}

		// Step 3: Link it from the parent.
		if err := s.tweets.AddReply(ctx, parentID, created.ID); err != nil {
			return fmt.Errorf("link reply: %w", err)
		}

		reply = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content.CreateReply: %w", err)
	}

	s.log.InfoContext(ctx, "reply created",
		slog.String("user_id", authorID.String()),
		slog.String("tweet_id", reply.ID.String()),
		slog.String("parent_id", input.ParentID.String()))

	return reply, nil
}

// tweetErr narrows a store not-found to ErrTweetNotFound.
func tweetErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrTweetNotFound
	}
	return err
}

// authorErr narrows a store not-found on insert, which can only mean a
// missing author, to ErrUserNotFound.
func authorErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}
