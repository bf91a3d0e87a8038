package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// Signin authenticates a user with email and password. An unknown email and
// a wrong password both return ErrInvalidCredentials.
func (s *Service) Signin(ctx context.Context, input SigninInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.compareDummy(input.Password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Signin get user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Signin: %w", err)
	}

	token, err := s.tokens.IssueToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Signin issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
