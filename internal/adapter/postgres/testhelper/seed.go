package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and empty follow sets.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
		FullName:     "Test User " + suffix,
		Verification: domain.DefaultVerification(),
		Followers:    []uuid.UUID{},
		Followings:   []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, full_name, verification_plan_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Verification.PlanType, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedTweet inserts a top-level tweet by authorID created at createdAt.
func SeedTweet(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, content string, createdAt time.Time) domain.Tweet {
	t.Helper()

	tweet := domain.Tweet{
		ID:             uuid.New(),
		Content:        content,
		AuthorID:       authorID,
		IsTweet:        true,
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
		Likes:          []domain.Like{},
		ReplyIDs:       []uuid.UUID{},
		RetweetUserIDs: []uuid.UUID{},
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tweets (id, content, author_id, is_tweet, is_reply, created_at)
		 VALUES ($1, $2, $3, TRUE, FALSE, $4)`,
		tweet.ID, tweet.Content, tweet.AuthorID, tweet.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTweet insert: %v", err)
	}

	return tweet
}

// SeedLike inserts a like from userID on tweetID.
func SeedLike(t *testing.T, pool *pgxpool.Pool, userID, tweetID uuid.UUID) domain.Like {
	t.Helper()

	like := domain.Like{
		ID:        uuid.New(),
		UserID:    userID,
		TweetID:   tweetID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO likes (id, user_id, tweet_id, created_at) VALUES ($1, $2, $3, $4)`,
		like.ID, like.UserID, like.TweetID, like.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLike insert: %v", err)
	}

	return like
}
