package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// TweetStore is the content store over a Store.
type TweetStore struct {
	s *Store
}

// Create stores a new tweet with empty owned collections.
func (r *TweetStore) Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	if _, ok := st.tweets[t.ID]; ok {
		return nil, alreadyExists("tweet", t.ID)
	}
	if _, ok := st.users[t.AuthorID]; !ok {
		return nil, notFound("tweet author", t.AuthorID)
	}
	if t.ReplyForID != nil {
		if _, ok := st.tweets[*t.ReplyForID]; !ok {
			return nil, notFound("tweet", *t.ReplyForID)
		}
	}

	created := copyTweet(*t)
	created.ReplyIDs = []uuid.UUID{}
	created.RetweetUserIDs = []uuid.UUID{}
	st.tweets[created.ID] = created

	return r.hydrate(created), nil
}

// GetByID returns the tweet with likes, replies and retweeters.
func (r *TweetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	t, ok := r.s.state.tweets[id]
	if !ok {
		return nil, notFound("tweet", id)
	}
	return r.hydrate(t), nil
}

// GetByIDs returns the tweets that exist among ids, in no particular order.
func (r *TweetStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tweet, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	out := make([]domain.Tweet, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if t, ok := r.s.state.tweets[id]; ok {
			out = append(out, *r.hydrate(t))
		}
	}
	return out, nil
}

// LockForUpdate only checks that the tweet exists.
func (r *TweetStore) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.read(ctx)()

	if _, ok := r.s.state.tweets[id]; !ok {
		return notFound("tweet", id)
	}
	return nil
}

// AddReply appends replyID to the parent's reply collection.
func (r *TweetStore) AddReply(ctx context.Context, parentID, replyID uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	parent, ok := st.tweets[parentID]
	if !ok {
		return notFound("tweet reply", parentID)
	}
	if _, ok := st.tweets[replyID]; !ok {
		return notFound("tweet reply", replyID)
	}
	if slices.Contains(parent.ReplyIDs, replyID) {
		return alreadyExists("tweet reply", parentID)
	}
	parent.ReplyIDs = append(parent.ReplyIDs, replyID)
	st.tweets[parentID] = parent
	return nil
}

// AddRetweet adds userID to the tweet's retweet set. Idempotent.
func (r *TweetStore) AddRetweet(ctx context.Context, tweetID, userID uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	t, ok := st.tweets[tweetID]
	if !ok {
		return notFound("retweet", tweetID)
	}
	if _, ok := st.users[userID]; !ok {
		return notFound("retweet", userID)
	}
	if !slices.Contains(t.RetweetUserIDs, userID) {
		t.RetweetUserIDs = append(t.RetweetUserIDs, userID)
		st.tweets[tweetID] = t
	}
	return nil
}

// RemoveRetweet removes userID from the tweet's retweet set.
func (r *TweetStore) RemoveRetweet(ctx context.Context, tweetID, userID uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	t, ok := st.tweets[tweetID]
	if !ok {
		return nil
	}
	t.RetweetUserIDs = slices.DeleteFunc(t.RetweetUserIDs, func(id uuid.UUID) bool { return id == userID })
	st.tweets[tweetID] = t
	return nil
}

// Delete removes the tweet and its likes. Replies survive with ReplyForID
// cleared, and the tweet disappears from any parent's reply collection.
func (r *TweetStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	if _, ok := st.tweets[id]; !ok {
		return notFound("tweet", id)
	}
	delete(st.tweets, id)

	for _, l := range st.tweetLikes(id) {
		st.removeLike(l)
	}

	for tid, t := range st.tweets {
		changed := false
		if t.ReplyForID != nil && *t.ReplyForID == id {
			t.ReplyForID = nil
			changed = true
		}
		if slices.Contains(t.ReplyIDs, id) {
			t.ReplyIDs = slices.DeleteFunc(t.ReplyIDs, func(rid uuid.UUID) bool { return rid == id })
			changed = true
		}
		if changed {
			st.tweets[tid] = t
		}
	}
	return nil
}

// ListTopLevel returns every top-level tweet, newest first.
func (r *TweetStore) ListTopLevel(ctx context.Context) ([]domain.Tweet, error) {
	return r.list(ctx, func(t domain.Tweet) bool { return t.IsTweet })
}

// ListByUser returns the top-level tweets authored by userID together with
// the tweets userID retweeted, newest first.
func (r *TweetStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	return r.list(ctx, func(t domain.Tweet) bool {
		return (t.AuthorID == userID && t.IsTweet) || slices.Contains(t.RetweetUserIDs, userID)
	})
}

// ListLikedBy returns the tweets userID liked, newest first.
func (r *TweetStore) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	return r.list(ctx, func(t domain.Tweet) bool {
		_, ok := r.s.state.likeByKey[likeKey{userID: userID, tweetID: t.ID}]
		return ok
	})
}

func (r *TweetStore) list(ctx context.Context, keep func(domain.Tweet) bool) ([]domain.Tweet, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	out := []domain.Tweet{}
	for _, t := range r.s.state.tweets {
		if keep(t) {
			out = append(out, *r.hydrate(t))
		}
	}
	slices.SortFunc(out, newestFirst)
	return out, nil
}

// hydrate returns a detached copy of t with its likes attached and replies
// in creation order. Callers hold the store lock.
func (r *TweetStore) hydrate(t domain.Tweet) *domain.Tweet {
	st := r.s.state
	out := copyTweet(t)

	out.Likes = st.tweetLikes(t.ID)

	slices.SortStableFunc(out.ReplyIDs, func(a, b uuid.UUID) int {
		ta, tb := st.tweets[a], st.tweets[b]
		if c := ta.CreatedAt.Compare(tb.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(a, b)
	})
	return &out
}

func newestFirst(a, b domain.Tweet) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return compareIDs(b.ID, a.ID)
}

func likeOrder(a, b domain.Like) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return compareIDs(a.ID, b.ID)
}
