// Package view builds the read-side projections of users, tweets and likes.
// Projections are viewer-relative and never change state.
package view

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// UserSummary is the short form of a user shown in follower lists.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Image    string    `json:"image"`
}

// UserView is the projection of a user profile. IsRequestingUser and
// IsFollowed depend on the caller and are left false by the projector.
type UserView struct {
	ID               uuid.UUID     `json:"id"`
	FullName         string        `json:"fullName"`
	Email            string        `json:"email"`
	Image            string        `json:"image"`
	BackgroundImage  string        `json:"backgroundImage"`
	Location         string        `json:"location"`
	Website          string        `json:"website"`
	BirthDate        string        `json:"birthDate"`
	Mobile           string        `json:"mobile"`
	Bio              string        `json:"bio"`
	LoginWithGoogle  bool          `json:"loginWithGoogle"`
	IsVerified       bool          `json:"isVerified"`
	Followers        []UserSummary `json:"followers"`
	Followings       []UserSummary `json:"followings"`
	IsRequestingUser bool          `json:"isRequestingUser"`
	IsFollowed       bool          `json:"isFollowed"`
}

// TweetView is the projection of a tweet as seen by one viewer.
type TweetView struct {
	ID             uuid.UUID   `json:"id"`
	Content        string      `json:"content"`
	Image          string      `json:"image"`
	Video          string      `json:"video"`
	User           UserView    `json:"user"`
	CreatedAt      time.Time   `json:"createdAt"`
	TotalLikes     int         `json:"totalLikes"`
	TotalReplies   int         `json:"totalReplies"`
	TotalRetweets  int         `json:"totalRetweets"`
	IsLiked        bool        `json:"isLiked"`
	IsRetweet      bool        `json:"isRetweet"`
	RetweetUserIDs []uuid.UUID `json:"retweetUserIds"`
	ReplyTweets    []TweetView `json:"replyTweets"`
	ReplyForID     *uuid.UUID  `json:"replyFor,omitempty"`
}

// LikeView is the projection of a like with its user and tweet.
type LikeView struct {
	ID    uuid.UUID `json:"id"`
	User  UserView  `json:"user"`
	Tweet TweetView `json:"tweet"`
}

// Summarize returns the short form of u.
func Summarize(u domain.User) UserSummary {
	return UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email, Image: u.Image}
}

// ProjectUser builds the view of u. followers and followings are the
// summaries of u's follow sets; nil becomes an empty list.
func ProjectUser(u *domain.User, followers, followings []UserSummary) UserView {
	if followers == nil {
		followers = []UserSummary{}
	}
	if followings == nil {
		followings = []UserSummary{}
	}
	return UserView{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		Image:           u.Image,
		BackgroundImage: u.BackgroundImage,
		Location:        u.Location,
		Website:         u.Website,
		BirthDate:       u.BirthDate,
		Mobile:          u.Mobile,
		Bio:             u.Bio,
		LoginWithGoogle: u.LoginWithGoogle,
		IsVerified:      u.Verification.Status,
		Followers:       followers,
		Followings:      followings,
	}
}

// ProjectTweet builds the view of t for viewerID. replies are the already
// projected immediate replies; they are attached as given.
func ProjectTweet(t *domain.Tweet, author UserView, viewerID uuid.UUID, replies []TweetView) TweetView {
	if replies == nil {
		replies = []TweetView{}
	}
	retweeters := make([]uuid.UUID, len(t.RetweetUserIDs))
	copy(retweeters, t.RetweetUserIDs)

	return TweetView{
		ID:             t.ID,
		Content:        t.Content,
		Image:          t.Image,
		Video:          t.Video,
		User:           author,
		CreatedAt:      t.CreatedAt,
		TotalLikes:     len(t.Likes),
		TotalReplies:   len(t.ReplyIDs),
		TotalRetweets:  len(t.RetweetUserIDs),
		IsLiked:        t.IsLikedBy(viewerID),
		IsRetweet:      t.IsRetweetedBy(viewerID),
		RetweetUserIDs: retweeters,
		ReplyTweets:    replies,
		ReplyForID:     t.ReplyForID,
	}
}
