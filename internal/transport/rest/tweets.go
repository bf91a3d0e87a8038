package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
	"github.com/heartmarshall/tweeter-backend/internal/service/content"
)

type contentService interface {
	CreateTweet(ctx context.Context, authorID uuid.UUID, input content.CreateTweetInput) (*domain.Tweet, error)
	CreateReply(ctx context.Context, authorID uuid.UUID, input content.CreateReplyInput) (*domain.Tweet, error)
	ToggleRetweet(ctx context.Context, tweetID, userID uuid.UUID) (*domain.Tweet, error)
	FindByID(ctx context.Context, tweetID uuid.UUID) (*domain.Tweet, error)
	DeleteByID(ctx context.Context, tweetID, requesterID uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.Tweet, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
	ListLikedByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
}

// TweetHandler serves /api/tweets.
type TweetHandler struct {
	svc     contentService
	proj    projector
	metrics *Metrics
	log     *slog.Logger
}

// NewTweetHandler creates a TweetHandler.
func NewTweetHandler(svc contentService, proj projector, metrics *Metrics, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{svc: svc, proj: proj, metrics: metrics, log: logger.With("handler", "tweets")}
}

type createTweetRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
	Video   string `json:"video"`
}

type replyRequest struct {
	TweetID uuid.UUID `json:"tweetId"`
	Content string    `json:"content"`
	Image   string    `json:"image"`
}

// Create handles POST /api/tweets/create.
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req createTweetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTweet(r.Context(), callerID, content.CreateTweetInput{
		Content: req.Content,
		Image:   req.Image,
		Video:   req.Video,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.TweetsCreated.WithLabelValues("tweet").Inc()

	h.respondTweet(w, r, http.StatusCreated, t, callerID)
}

// Reply handles POST /api/tweets/reply.
func (h *TweetHandler) Reply(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req replyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.CreateReply(r.Context(), callerID, content.CreateReplyInput{
		ParentID: req.TweetID,
		Content:  req.Content,
		Image:    req.Image,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.TweetsCreated.WithLabelValues("reply").Inc()

	h.respondTweet(w, r, http.StatusCreated, t, callerID)
}

// Retweet handles PUT /api/tweets/{tweetId}/retweet.
func (h *TweetHandler) Retweet(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetId")
	if !ok {
		return
	}
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.ToggleRetweet(r.Context(), tweetID, callerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.RetweetsToggled.WithLabelValues(toggleAction(t.IsRetweetedBy(callerID), "retweet", "unretweet")).Inc()

	h.respondTweet(w, r, http.StatusOK, t, callerID)
}

// Get handles GET /api/tweets/{tweetId}.
func (h *TweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetId")
	if !ok {
		return
	}
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.FindByID(r.Context(), tweetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.respondTweet(w, r, http.StatusOK, t, callerID)
}

// Delete handles DELETE /api/tweets/{tweetId}. Only the author may delete.
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetId")
	if !ok {
		return
	}
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteByID(r.Context(), tweetID, callerID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "tweet deleted", Status: true})
}

// List handles GET /api/tweets.
func (h *TweetHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(ctx context.Context) ([]domain.Tweet, error) {
		return h.svc.ListAll(ctx)
	})
}

// ListForUser handles GET /api/tweets/user/{userId}.
func (h *TweetHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	h.list(w, r, func(ctx context.Context) ([]domain.Tweet, error) {
		return h.svc.ListForUser(ctx, userID)
	})
}

// ListLikedByUser handles GET /api/tweets/user/{userId}/likes.
func (h *TweetHandler) ListLikedByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	h.list(w, r, func(ctx context.Context) ([]domain.Tweet, error) {
		return h.svc.ListLikedByUser(ctx, userID)
	})
}

func (h *TweetHandler) list(w http.ResponseWriter, r *http.Request, load func(context.Context) ([]domain.Tweet, error)) {
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}

	tweets, err := load(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	views, err := h.proj.Tweets(r.Context(), tweets, callerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *TweetHandler) respondTweet(w http.ResponseWriter, r *http.Request, status int, t *domain.Tweet, viewerID uuid.UUID) {
	tv, err := h.proj.Tweet(r.Context(), t, viewerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, tv)
}
