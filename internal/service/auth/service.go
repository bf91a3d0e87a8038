package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenIssuer defines the token interface needed by auth service.
type tokenIssuer interface {
	IssueToken(identity string) (string, error)
	ResolveIdentity(token string) (string, error)
}

// passwordHasher defines the password hashing interface needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements signup, signin and token resolution.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
	hasher passwordHasher
	newID  func() uuid.UUID

	dummyOnce sync.Once
	dummyHash string
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenIssuer,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
		newID:  uuid.New,
	}
}

// compareDummy runs one password comparison against a hash no user owns, so
// signin for an unknown email costs the same as a wrong password.
func (s *Service) compareDummy(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(uuid.NewString())
	})
	_ = s.hasher.Compare(s.dummyHash, password)
}
