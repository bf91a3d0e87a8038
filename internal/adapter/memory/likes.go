package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// LikeStore is the interaction ledger over a Store. A like is visible from
// its tweet as soon as it is created.
type LikeStore struct {
	s *Store
}

// GetByUserAndTweet returns the like userID placed on tweetID.
func (r *LikeStore) GetByUserAndTweet(ctx context.Context, userID, tweetID uuid.UUID) (*domain.Like, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	id, ok := r.s.state.likeByKey[likeKey{userID: userID, tweetID: tweetID}]
	if !ok {
		return nil, notFound("like", tweetID)
	}
	l := r.s.state.likes[id]
	return &l, nil
}

// Create stores a like. A second like for the same (user, tweet) pair fails
// with domain.ErrAlreadyExists.
func (r *LikeStore) Create(ctx context.Context, l *domain.Like) (*domain.Like, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	if _, ok := st.tweets[l.TweetID]; !ok {
		return nil, notFound("like", l.TweetID)
	}
	if _, ok := st.users[l.UserID]; !ok {
		return nil, notFound("like", l.UserID)
	}
	key := likeKey{userID: l.UserID, tweetID: l.TweetID}
	if _, ok := st.likeByKey[key]; ok {
		return nil, alreadyExists("like", l.TweetID)
	}
	if _, ok := st.likes[l.ID]; ok {
		return nil, alreadyExists("like", l.ID)
	}

	created := *l
	st.addLike(created)
	return &created, nil
}

// Delete removes a like by id.
func (r *LikeStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	l, ok := st.likes[id]
	if !ok {
		return notFound("like", id)
	}
	st.removeLike(l)
	return nil
}

// ListByTweet returns the likes of a tweet in creation order.
func (r *LikeStore) ListByTweet(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	return r.s.state.tweetLikes(tweetID), nil
}
