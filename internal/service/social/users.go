package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// FindByID returns the user with the given id.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("social.FindByID: %w", userErr(err))
	}
	return user, nil
}

// FindByIdentity returns the user registered with the given email.
func (s *Service) FindByIdentity(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("social.FindByIdentity: %w", userErr(err))
	}
	return user, nil
}

// Search finds users whose full name or email contains query, ignoring
// case. An empty query matches nobody.
func (s *Service) Search(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.User{}, nil
	}

	users, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("social.Search: %w", err)
	}
	return users, nil
}

// UpdateProfile applies the non-empty fields of patch to the user's profile
// and returns the updated user.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (*domain.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	upd := patch.toUpdate(time.Now().UTC())
	if upd.IsEmpty() {
		return s.FindByID(ctx, userID)
	}

	user, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("social.UpdateProfile: %w", userErr(err))
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}

// userErr narrows a store not-found to ErrUserNotFound.
func userErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}
