package view

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type tweetRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tweet, error)
}

// Repos holds the stores the loaders read from. Loaders call the stores
// directly, bypassing the service layer.
type Repos struct {
	Users  userRepo
	Tweets tweetRepo
}

// Loaders contains the per-request DataLoaders. A missing id loads as nil.
type Loaders struct {
	UserByID  *dataloader.Loader[uuid.UUID, *domain.User]
	TweetByID *dataloader.Loader[uuid.UUID, *domain.Tweet]
}

// NewLoaders creates a new set of DataLoaders backed by the given stores.
// Loaders cache results, so a set must not outlive one request.
func NewLoaders(repos Repos) *Loaders {
	return &Loaders{
		UserByID:  newLoader(newUsersBatchFn(repos.Users)),
		TweetByID: newLoader(newTweetsBatchFn(repos.Tweets)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}
		return mapResults(keys, byID)
	}
}

func newTweetsBatchFn(repo tweetRepo) dataloader.BatchFunc[uuid.UUID, *domain.Tweet] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Tweet] {
		tweets, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Tweet](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Tweet, len(tweets))
		for i := range tweets {
			byID[tweets[i].ID] = &tweets[i]
		}
		return mapResults(keys, byID)
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order; missing keys get the zero value.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}

// joinErrors collapses the per-key errors of a LoadMany call.
func joinErrors(errs []error) error {
	return errors.Join(errs...)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "view-loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// LoadersFromContext returns the Loaders stored in ctx, if any.
func LoadersFromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}

// Middleware creates an HTTP middleware that instantiates per-request
// DataLoaders and stores them in the request context.
func Middleware(repos Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
