package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Tweet is a post. Top-level posts have IsTweet set, replies have IsReply
// set; the two flags are independent and are never collapsed into one kind.
//
// Likes and ReplyIDs are owned by the tweet (deleting the tweet removes its
// likes). RetweetUserIDs and ReplyForID are plain references.
type Tweet struct {
	ID             uuid.UUID
	Content        string
	Image          string
	Video          string
	AuthorID       uuid.UUID
	CreatedAt      time.Time
	IsTweet        bool
	IsReply        bool
	ReplyForID     *uuid.UUID
	Likes          []Like
	ReplyIDs       []uuid.UUID
	RetweetUserIDs []uuid.UUID
}

// IsRetweetedBy reports whether userID has retweeted the tweet.
func (t *Tweet) IsRetweetedBy(userID uuid.UUID) bool {
	return slices.Contains(t.RetweetUserIDs, userID)
}

// IsLikedBy reports whether userID has a like on the tweet.
func (t *Tweet) IsLikedBy(userID uuid.UUID) bool {
	return slices.ContainsFunc(t.Likes, func(l Like) bool { return l.UserID == userID })
}

// IsAuthoredBy reports whether userID is the author of the tweet.
func (t *Tweet) IsAuthoredBy(userID uuid.UUID) bool {
	return t.AuthorID == userID
}

// Like records that a user liked a tweet. There is at most one like per
// (user, tweet) pair.
type Like struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TweetID   uuid.UUID
	CreatedAt time.Time
}
