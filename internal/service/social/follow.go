package social

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// ToggleFollow makes callerID follow targetID, or unfollow it when the
// follow already exists on both sides. Both sides are written in one
// transaction. Returns the target user as it is after the change.
func (s *Service) ToggleFollow(ctx context.Context, callerID, targetID uuid.UUID) (*domain.User, error) {
	if callerID == targetID {
		return nil, domain.NewValidationError("user_id", "cannot follow yourself")
	}

	var (
		target   *domain.User
		followed bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Step 1: Lock both rows so concurrent toggles on the pair serialize.
		if err := s.users.LockForUpdate(ctx, callerID, targetID); err != nil {
			return fmt.Errorf("lock users: %w", userErr(err))
		}

		caller, err := s.users.GetByID(ctx, callerID)
		if err != nil {
			return fmt.Errorf("get caller: %w", userErr(err))
		}
		current, err := s.users.GetByID(ctx, targetID)
		if err != nil {
			return fmt.Errorf("get target: %w", userErr(err))
		}

		// Step 2: Unfollow only if both sides agree; otherwise (re)follow,
		// which also repairs a half-written edge.
		if caller.HasFollowing(targetID) && current.HasFollower(callerID) {
			if err := s.users.RemoveFollowing(ctx, callerID, targetID); err != nil {
				return fmt.Errorf("remove following: %w", err)
			}
			if err := s.users.RemoveFollower(ctx, targetID, callerID); err != nil {
				return fmt.Errorf("remove follower: %w", err)
			}
		} else {
			if err := s.users.AddFollowing(ctx, callerID, targetID); err != nil {
				return fmt.Errorf("add following: %w", err)
			}
			if err := s.users.AddFollower(ctx, targetID, callerID); err != nil {
				return fmt.Errorf("add follower: %w", err)
			}
			followed = true
		}

		// Step 3: Re-read the target inside the transaction.
		target, err = s.users.GetByID(ctx, targetID)
		if err != nil {
			return fmt.Errorf("reload target: %w", userErr(err))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("social.ToggleFollow: %w", err)
	}

	s.log.InfoContext(ctx, "follow toggled",
		slog.String("user_id", callerID.String()),
		slog.String("target_id", targetID.String()),
		slog.Bool("following", followed))

	return target, nil
}

// IsSameUser reports whether a and b are the same account.
func IsSameUser(a, b *domain.User) bool {
	return a != nil && b != nil && a.ID == b.ID
}

// IsFollowedBy reports whether candidate is in follower's following set.
func IsFollowedBy(follower, candidate *domain.User) bool {
	return follower != nil && candidate != nil && follower.HasFollowing(candidate.ID)
}
