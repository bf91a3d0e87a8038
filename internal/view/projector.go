package view

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// Projector turns domain records into views. Related users and tweets are
// resolved through the per-request Loaders when present, otherwise through
// a fresh set built for the call.
type Projector struct {
	repos Repos
}

// NewProjector creates a Projector reading from the given stores.
func NewProjector(users userRepo, tweets tweetRepo) *Projector {
	return &Projector{repos: Repos{Users: users, Tweets: tweets}}
}

func (p *Projector) loaders(ctx context.Context) *Loaders {
	if l, ok := LoadersFromContext(ctx); ok {
		return l
	}
	return NewLoaders(p.repos)
}

// User projects u with its follower and following summaries.
func (p *Projector) User(ctx context.Context, u *domain.User) (UserView, error) {
	return p.user(ctx, p.loaders(ctx), u)
}

// Users projects every user in us, preserving order.
func (p *Projector) Users(ctx context.Context, us []domain.User) ([]UserView, error) {
	l := p.loaders(ctx)
	out := make([]UserView, len(us))

	g, gctx := errgroup.WithContext(ctx)
	for i := range us {
		g.Go(func() error {
			v, err := p.user(gctx, l, &us[i])
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Projector) user(ctx context.Context, l *Loaders, u *domain.User) (UserView, error) {
	var followers, followings []UserSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followers, err = summaries(gctx, l, u.Followers)
		return err
	})
	g.Go(func() error {
		var err error
		followings, err = summaries(gctx, l, u.Followings)
		return err
	})
	if err := g.Wait(); err != nil {
		return UserView{}, fmt.Errorf("view.User: %w", err)
	}

	return ProjectUser(u, followers, followings), nil
}

// summaries loads ids and returns the summaries of the users that exist.
func summaries(ctx context.Context, l *Loaders, ids []uuid.UUID) ([]UserSummary, error) {
	if len(ids) == 0 {
		return []UserSummary{}, nil
	}
	users, errs := l.UserByID.LoadMany(ctx, ids)()
	if err := joinErrors(errs); err != nil {
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		if u != nil {
			out = append(out, Summarize(*u))
		}
	}
	return out, nil
}

// Tweet projects t for viewerID with its author and one level of replies.
func (p *Projector) Tweet(ctx context.Context, t *domain.Tweet, viewerID uuid.UUID) (TweetView, error) {
	return p.tweet(ctx, p.loaders(ctx), t, viewerID, true)
}

// Tweets projects every tweet in ts for viewerID, preserving order.
func (p *Projector) Tweets(ctx context.Context, ts []domain.Tweet, viewerID uuid.UUID) ([]TweetView, error) {
	l := p.loaders(ctx)
	out := make([]TweetView, len(ts))

	g, gctx := errgroup.WithContext(ctx)
	for i := range ts {
		g.Go(func() error {
			v, err := p.tweet(gctx, l, &ts[i], viewerID, true)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// tweet projects t. Replies are expanded only when withReplies is set, so
// nested replies carry counts but no reply bodies.
func (p *Projector) tweet(ctx context.Context, l *Loaders, t *domain.Tweet, viewerID uuid.UUID, withReplies bool) (TweetView, error) {
	var (
		author  UserView
		replies []TweetView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = p.author(gctx, l, t.AuthorID)
		return err
	})
	if withReplies && len(t.ReplyIDs) > 0 {
		g.Go(func() error {
			var err error
			replies, err = p.replies(gctx, l, t.ReplyIDs, viewerID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return TweetView{}, fmt.Errorf("view.Tweet: %w", err)
	}

	return ProjectTweet(t, author, viewerID, replies), nil
}

func (p *Projector) author(ctx context.Context, l *Loaders, id uuid.UUID) (UserView, error) {
	u, err := l.UserByID.Load(ctx, id)()
	if err != nil {
		return UserView{}, err
	}
	if u == nil {
		return UserView{}, fmt.Errorf("author %s: %w", id, domain.ErrUserNotFound)
	}
	return p.user(ctx, l, u)
}

func (p *Projector) replies(ctx context.Context, l *Loaders, ids []uuid.UUID, viewerID uuid.UUID) ([]TweetView, error) {
	tweets, errs := l.TweetByID.LoadMany(ctx, ids)()
	if err := joinErrors(errs); err != nil {
		return nil, err
	}

	out := make([]TweetView, len(tweets))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tweets {
		if t == nil {
			continue
		}
		g.Go(func() error {
			v, err := p.tweet(gctx, l, t, viewerID, false)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop replies that vanished between reads.
	kept := out[:0]
	for i, v := range out {
		if tweets[i] != nil {
			kept = append(kept, v)
		}
	}
	return kept, nil
}

// Like projects l for viewerID with its user and tweet.
func (p *Projector) Like(ctx context.Context, like domain.Like, viewerID uuid.UUID) (LikeView, error) {
	return p.like(ctx, p.loaders(ctx), like, viewerID)
}

// Likes projects every like in likes for viewerID, preserving order.
func (p *Projector) Likes(ctx context.Context, likes []domain.Like, viewerID uuid.UUID) ([]LikeView, error) {
	l := p.loaders(ctx)
	out := make([]LikeView, len(likes))

	g, gctx := errgroup.WithContext(ctx)
	for i := range likes {
		g.Go(func() error {
			v, err := p.like(gctx, l, likes[i], viewerID)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Projector) like(ctx context.Context, l *Loaders, like domain.Like, viewerID uuid.UUID) (LikeView, error) {
	var (
		user  UserView
		tweet TweetView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = p.author(gctx, l, like.UserID)
		return err
	})
	g.Go(func() error {
		t, err := l.TweetByID.Load(gctx, like.TweetID)()
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("tweet %s: %w", like.TweetID, domain.ErrTweetNotFound)
		}
		tweet, err = p.tweet(gctx, l, t, viewerID, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return LikeView{}, fmt.Errorf("view.Like: %w", err)
	}

	return LikeView{ID: like.ID, User: user, Tweet: tweet}, nil
}
