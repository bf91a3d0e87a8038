package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// Signup registers a new user with email and password and returns a token
// for it. Returns ErrDuplicateEmail if the email is already registered.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	// Step 3: Create user. Email uniqueness is enforced by the store.
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           s.newID(),
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		BirthDate:    input.BirthDate,
		Verification: domain.DefaultVerification(),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: %w", domain.ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	// Step 4: Issue token
	token, err := s.tokens.IssueToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
