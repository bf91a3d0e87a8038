// Package memory implements the user, tweet and like stores in process
// memory. It is used by the memory storage driver and by service tests.
//
// All state lives behind one mutex. RunInTx holds that mutex for the whole
// callback, so transactions are serialized; a failed transaction restores
// the snapshot taken when it started.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

type txKey struct{}

type likeKey struct {
	userID  uuid.UUID
	tweetID uuid.UUID
}

type state struct {
	users     map[uuid.UUID]domain.User
	emails    map[string]uuid.UUID
	tweets    map[uuid.UUID]domain.Tweet
	likes     map[uuid.UUID]domain.Like
	likeByKey map[likeKey]uuid.UUID

	// likesByTweet indexes like ids by tweet id.
	likesByTweet map[uuid.UUID]map[uuid.UUID]struct{}
}

func newState() *state {
	return &state{
		users:     make(map[uuid.UUID]domain.User),
		emails:    make(map[string]uuid.UUID),
		tweets:    make(map[uuid.UUID]domain.Tweet),
		likes:     make(map[uuid.UUID]domain.Like),
		likeByKey: make(map[likeKey]uuid.UUID),

		likesByTweet: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

func (s *state) clone() *state {
	c := &state{
		users:     make(map[uuid.UUID]domain.User, len(s.users)),
		emails:    make(map[string]uuid.UUID, len(s.emails)),
		tweets:    make(map[uuid.UUID]domain.Tweet, len(s.tweets)),
		likes:     make(map[uuid.UUID]domain.Like, len(s.likes)),
		likeByKey: make(map[likeKey]uuid.UUID, len(s.likeByKey)),

		likesByTweet: make(map[uuid.UUID]map[uuid.UUID]struct{}, len(s.likesByTweet)),
	}
	for id, u := range s.users {
		c.users[id] = copyUser(u)
	}
	for k, v := range s.emails {
		c.emails[k] = v
	}
	for id, t := range s.tweets {
		c.tweets[id] = copyTweet(t)
	}
	for id, l := range s.likes {
		c.likes[id] = l
	}
	for k, v := range s.likeByKey {
		c.likeByKey[k] = v
	}
	for tweetID, ids := range s.likesByTweet {
		set := make(map[uuid.UUID]struct{}, len(ids))
		for id := range ids {
			set[id] = struct{}{}
		}
		c.likesByTweet[tweetID] = set
	}
	return c
}

func (s *state) addLike(l domain.Like) {
	s.likes[l.ID] = l
	s.likeByKey[likeKey{userID: l.UserID, tweetID: l.TweetID}] = l.ID
	set, ok := s.likesByTweet[l.TweetID]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		s.likesByTweet[l.TweetID] = set
	}
	set[l.ID] = struct{}{}
}

func (s *state) removeLike(l domain.Like) {
	delete(s.likes, l.ID)
	delete(s.likeByKey, likeKey{userID: l.UserID, tweetID: l.TweetID})
	if set, ok := s.likesByTweet[l.TweetID]; ok {
		delete(set, l.ID)
		if len(set) == 0 {
			delete(s.likesByTweet, l.TweetID)
		}
	}
}

// tweetLikes returns the likes of tweetID in creation order.
func (s *state) tweetLikes(tweetID uuid.UUID) []domain.Like {
	ids := s.likesByTweet[tweetID]
	out := make([]domain.Like, 0, len(ids))
	for id := range ids {
		out = append(out, s.likes[id])
	}
	slices.SortFunc(out, likeOrder)
	return out
}

// Store is an in-memory implementation of every persistence port.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// New creates an empty store.
func New() *Store {
	return &Store{state: newState()}
}

// Users returns the user store view.
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

// Tweets returns the tweet store view.
func (s *Store) Tweets() *TweetStore { return &TweetStore{s: s} }

// Likes returns the like store view.
func (s *Store) Likes() *LikeStore { return &LikeStore{s: s} }

// Ping reports whether the store is usable. It only fails on a done context.
func (s *Store) Ping(ctx context.Context) error { return ctxErr(ctx) }

// RunInTx runs fn with exclusive access to the store. If fn returns an error
// or panics, every change it made is discarded. Calls made with a context
// that is already inside a transaction of this store join it.
//
// The context handed to fn must not be shared with other goroutines.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// read and write take the store lock unless ctx already holds it.
func (s *Store) read(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) write(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func notFound(entity string, key any) error {
	return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
}

func alreadyExists(entity string, key any) error {
	return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func copyIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

func copyUser(u domain.User) domain.User {
	u.Followers = copyIDs(u.Followers)
	u.Followings = copyIDs(u.Followings)
	return u
}

func copyTweet(t domain.Tweet) domain.Tweet {
	t.ReplyIDs = copyIDs(t.ReplyIDs)
	t.RetweetUserIDs = copyIDs(t.RetweetUserIDs)
	t.Likes = nil
	if t.ReplyForID != nil {
		parent := *t.ReplyForID
		t.ReplyForID = &parent
	}
	return t
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("memory store: %w", err)
	}
	return nil
}
