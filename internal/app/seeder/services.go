// Package seeder fills a fresh deployment with demo users, follows, tweets,
// replies and likes. It goes through the services so every write takes the
// same transactional path as a real request.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
	"github.com/heartmarshall/tweeter-backend/internal/service/auth"
	"github.com/heartmarshall/tweeter-backend/internal/service/content"
	"github.com/heartmarshall/tweeter-backend/internal/service/interaction"
)

// Accounts creates users.
type Accounts interface {
	Signup(ctx context.Context, input auth.SignupInput) (*auth.AuthResult, error)
}

// Graph toggles follows and resolves accounts left by an earlier run.
type Graph interface {
	FindByIdentity(ctx context.Context, email string) (*domain.User, error)
	ToggleFollow(ctx context.Context, callerID, targetID uuid.UUID) (*domain.User, error)
}

// Posts creates tweets and replies.
type Posts interface {
	CreateTweet(ctx context.Context, authorID uuid.UUID, input content.CreateTweetInput) (*domain.Tweet, error)
	CreateReply(ctx context.Context, authorID uuid.UUID, input content.CreateReplyInput) (*domain.Tweet, error)
}

// Likes toggles likes.
type Likes interface {
	ToggleLike(ctx context.Context, tweetID, userID uuid.UUID) (*interaction.LikeResult, error)
}

// Services bundles what the pipeline writes through.
type Services struct {
	Accounts Accounts
	Graph    Graph
	Posts    Posts
	Likes    Likes
}
