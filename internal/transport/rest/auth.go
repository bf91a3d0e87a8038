package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
	"github.com/heartmarshall/tweeter-backend/internal/service/auth"
	"github.com/heartmarshall/tweeter-backend/internal/view"
)

type authService interface {
	Signup(ctx context.Context, input auth.SignupInput) (*auth.AuthResult, error)
	Signin(ctx context.Context, input auth.SigninInput) (*auth.AuthResult, error)
}

// AuthHandler serves the public /auth endpoints.
type AuthHandler struct {
	svc     authService
	proj    projector
	metrics *Metrics
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, proj projector, metrics *Metrics, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, proj: proj, metrics: metrics, log: logger.With("handler", "auth")}
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	BirthDate string `json:"birthDate"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  view.UserView `json:"user"`
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Signup(r.Context(), auth.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.Signups.Inc()

	h.respond(w, r, http.StatusCreated, result)
}

// Signin handles POST /auth/signin. It answers 202 Accepted on success.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Signin(r.Context(), auth.SigninInput{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.metrics.SigninFailures.Inc()
		}
		respondError(w, r, h.log, err)
		return
	}

	h.respond(w, r, http.StatusAccepted, result)
}

func (h *AuthHandler) respond(w http.ResponseWriter, r *http.Request, status int, result *auth.AuthResult) {
	uv, err := h.proj.User(r.Context(), result.User)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	uv.IsRequestingUser = true
	writeJSON(w, status, authResponse{Token: result.Token, User: uv})
}
