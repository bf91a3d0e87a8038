// Package rest exposes the services over HTTP/JSON.
package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
	"github.com/heartmarshall/tweeter-backend/internal/transport/middleware"
	"github.com/heartmarshall/tweeter-backend/internal/view"
)

type projector interface {
	User(ctx context.Context, u *domain.User) (view.UserView, error)
	Users(ctx context.Context, us []domain.User) ([]view.UserView, error)
	Tweet(ctx context.Context, t *domain.Tweet, viewerID uuid.UUID) (view.TweetView, error)
	Tweets(ctx context.Context, ts []domain.Tweet, viewerID uuid.UUID) ([]view.TweetView, error)
	Like(ctx context.Context, like domain.Like, viewerID uuid.UUID) (view.LikeView, error)
	Likes(ctx context.Context, likes []domain.Like, viewerID uuid.UUID) ([]view.LikeView, error)
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterConfig holds everything NewRouter mounts.
type RouterConfig struct {
	Auth   *AuthHandler
	Users  *UserHandler
	Tweets *TweetHandler
	Likes  *LikeHandler
	Health *HealthHandler

	Tokens  tokenValidator
	Loaders view.Repos
	Metrics *Metrics
	// Gatherer backs the metrics endpoint; nil disables it.
	Gatherer    prometheus.Gatherer
	MetricsPath string
}

// NewRouter builds the route table. Every /api route requires a bearer
// token and gets per-request loaders for view projection.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(middleware.Instrument(cfg.Metrics.RequestDuration)))

	r.HandleFunc("/live", cfg.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", cfg.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", cfg.Health.Health).Methods(http.MethodGet)
	if cfg.Gatherer != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	r.HandleFunc("/auth/signup", cfg.Auth.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/signin", cfg.Auth.Signin).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(
		mux.MiddlewareFunc(middleware.RequireAuth(cfg.Tokens)),
		mux.MiddlewareFunc(view.Middleware(cfg.Loaders)),
	)

	// Fixed segments are registered before {userId} so they win the match.
	api.HandleFunc("/users/profile", cfg.Users.Profile).Methods(http.MethodGet)
	api.HandleFunc("/users/search", cfg.Users.Search).Methods(http.MethodGet)
	api.HandleFunc("/users/update", cfg.Users.Update).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", cfg.Users.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/follow", cfg.Users.Follow).Methods(http.MethodPut)

	api.HandleFunc("/tweets", cfg.Tweets.List).Methods(http.MethodGet)
	api.HandleFunc("/tweets/create", cfg.Tweets.Create).Methods(http.MethodPost)
	api.HandleFunc("/tweets/reply", cfg.Tweets.Reply).Methods(http.MethodPost)
	api.HandleFunc("/tweets/user/{userId}", cfg.Tweets.ListForUser).Methods(http.MethodGet)
	api.HandleFunc("/tweets/user/{userId}/likes", cfg.Tweets.ListLikedByUser).Methods(http.MethodGet)
	api.HandleFunc("/tweets/{tweetId}/retweet", cfg.Tweets.Retweet).Methods(http.MethodPut)
	api.HandleFunc("/tweets/{tweetId}", cfg.Tweets.Get).Methods(http.MethodGet)
	api.HandleFunc("/tweets/{tweetId}", cfg.Tweets.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/{tweetId}/likes", cfg.Likes.Toggle).Methods(http.MethodPost)
	api.HandleFunc("/tweet/{tweetId}/likes", cfg.Likes.List).Methods(http.MethodGet)

	return r
}
