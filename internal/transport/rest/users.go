package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
	"github.com/heartmarshall/tweeter-backend/internal/service/social"
	"github.com/heartmarshall/tweeter-backend/internal/view"
)

type socialService interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch social.ProfilePatch) (*domain.User, error)
	ToggleFollow(ctx context.Context, callerID, targetID uuid.UUID) (*domain.User, error)
}

// UserHandler serves /api/users.
type UserHandler struct {
	svc     socialService
	proj    projector
	metrics *Metrics
	log     *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc socialService, proj projector, metrics *Metrics, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, proj: proj, metrics: metrics, log: logger.With("handler", "users")}
}

type profileRequest struct {
	FullName        *string `json:"fullName"`
	Bio             *string `json:"bio"`
	Location        *string `json:"location"`
	Website         *string `json:"website"`
	BirthDate       *string `json:"birthDate"`
	Image           *string `json:"image"`
	BackgroundImage *string `json:"backgroundImage"`
}

// Profile handles GET /api/users/profile.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	h.respondUser(w, r, caller, caller)
}

// Get handles GET /api/users/{userId}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	target, err := h.svc.FindByID(r.Context(), targetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.respondUser(w, r, caller, target)
}

// Search handles GET /api/users/search?query=.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	users, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	views, err := h.proj.Users(r.Context(), users)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	for i := range views {
		markCaller(&views[i], caller, &users[i])
	}
	writeJSON(w, http.StatusOK, views)
}

// Update handles PUT /api/users/update.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateProfile(r.Context(), callerID, social.ProfilePatch{
		FullName:        req.FullName,
		Bio:             req.Bio,
		Location:        req.Location,
		Website:         req.Website,
		BirthDate:       req.BirthDate,
		Image:           req.Image,
		BackgroundImage: req.BackgroundImage,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.respondUser(w, r, updated, updated)
}

// Follow handles PUT /api/users/{userId}/follow.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	callerID, ok := callerID(w, r)
	if !ok {
		return
	}

	target, err := h.svc.ToggleFollow(r.Context(), callerID, targetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.FollowsToggled.WithLabelValues(toggleAction(target.HasFollower(callerID), "follow", "unfollow")).Inc()

	// Re-read the caller so its following set reflects the toggle.
	caller, err := h.svc.FindByID(r.Context(), callerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.respondUser(w, r, caller, target)
}

func (h *UserHandler) caller(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	id, ok := callerID(w, r)
	if !ok {
		return nil, false
	}
	u, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return nil, false
	}
	return u, true
}

func (h *UserHandler) respondUser(w http.ResponseWriter, r *http.Request, caller, target *domain.User) {
	uv, err := h.proj.User(r.Context(), target)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	markCaller(&uv, caller, target)
	writeJSON(w, http.StatusOK, uv)
}

// markCaller fills the caller-relative flags the projector leaves unset.
func markCaller(uv *view.UserView, caller, target *domain.User) {
	uv.IsRequestingUser = social.IsSameUser(caller, target)
	uv.IsFollowed = social.IsFollowedBy(caller, target)
}
