package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// ValidateToken resolves a bearer token to the id of an existing user.
// A bad token and a token whose user no longer exists both return
// ErrInvalidToken.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	identity, err := s.tokens.ResolveIdentity(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}

	user, err := s.users.GetByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", domain.ErrInvalidToken)
		}
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}

	return user.ID, nil
}
