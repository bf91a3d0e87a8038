package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
	"github.com/heartmarshall/tweeter-backend/internal/service/interaction"
	"github.com/heartmarshall/tweeter-backend/internal/view"
)

type likeService interface {
	ToggleLike(ctx context.Context, tweetID, userID uuid.UUID) (*interaction.LikeResult, error)
	ListLikes(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error)
}

// LikeHandler serves the like endpoints.
type LikeHandler struct {
	svc     likeService
	proj    projector
	metrics *Metrics
	log     *slog.Logger
}

// NewLikeHandler creates a LikeHandler.
func NewLikeHandler(svc likeService, proj projector, metrics *Metrics, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{svc: svc, proj: proj, metrics: metrics, log: logger.With("handler", "likes")}
}

type likeToggleResponse struct {
	view.LikeView
	Liked bool `json:"liked"`
}

// Toggle handles POST /api/{tweetId}/likes.
func (h *LikeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetId")
	if !ok {
		return
	}
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.ToggleLike(r.Context(), tweetID, callerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.LikesToggled.WithLabelValues(toggleAction(result.Liked, "like", "unlike")).Inc()

	lv, err := h.proj.Like(r.Context(), *result.Like, callerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, likeToggleResponse{LikeView: lv, Liked: result.Liked})
}

// List handles GET /api/tweet/{tweetId}/likes.
func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetId")
	if !ok {
		return
	}
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}

	likes, err := h.svc.ListLikes(r.Context(), tweetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	views, err := h.proj.Likes(r.Context(), likes, callerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
