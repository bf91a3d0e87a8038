package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tweeter-backend/internal/adapter/memory"
	"github.com/heartmarshall/tweeter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tweeter-backend/internal/adapter/postgres/like"
	"github.com/heartmarshall/tweeter-backend/internal/adapter/postgres/tweet"
	"github.com/heartmarshall/tweeter-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tweeter-backend/internal/config"
	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// userStore is the union of what the services and loaders need from users.
type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)
	LockForUpdate(ctx context.Context, ids ...uuid.UUID) error
	AddFollower(ctx context.Context, userID, followerID uuid.UUID) error
	RemoveFollower(ctx context.Context, userID, followerID uuid.UUID) error
	AddFollowing(ctx context.Context, userID, followingID uuid.UUID) error
	RemoveFollowing(ctx context.Context, userID, followingID uuid.UUID) error
}

type tweetStore interface {
	Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tweet, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
	AddReply(ctx context.Context, parentID, replyID uuid.UUID) error
	AddRetweet(ctx context.Context, tweetID, userID uuid.UUID) error
	RemoveRetweet(ctx context.Context, tweetID, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListTopLevel(ctx context.Context) ([]domain.Tweet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
	ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
}

type likeStore interface {
	GetByUserAndTweet(ctx context.Context, userID, tweetID uuid.UUID) (*domain.Like, error)
	Create(ctx context.Context, l *domain.Like) (*domain.Like, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTweet(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Compile-time interface assertions for both backends.
var (
	_ userStore  = (*user.Repo)(nil)
	_ userStore  = (*memory.UserStore)(nil)
	_ tweetStore = (*tweet.Repo)(nil)
	_ tweetStore = (*memory.TweetStore)(nil)
	_ likeStore  = (*like.Repo)(nil)
	_ likeStore  = (*memory.LikeStore)(nil)
	_ txRunner   = (*postgres.TxManager)(nil)
	_ txRunner   = (*memory.Store)(nil)
)

// Storage is an opened persistence backend.
type Storage struct {
	Driver string
	Users  userStore
	Tweets tweetStore
	Likes  likeStore
	Tx     txRunner
	Pinger interface {
		Ping(ctx context.Context) error
	}
	close func()
}

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects the backend selected by cfg.Storage.Driver. For
// Postgres, pending migrations are applied first when MigrateOnStart is set.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.New()
		logger.Warn("using in-memory storage; data is lost on restart")
		return &Storage{
			Driver: config.StorageDriverMemory,
			Users:  store.Users(),
			Tweets: store.Tweets(),
			Likes:  store.Likes(),
			Tx:     store,
			Pinger: store,
		}, nil

	case config.StorageDriverPostgres:
		if cfg.Database.MigrateOnStart {
			applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
			if err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied", slog.Int("count", applied))
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		st := PostgresStorage(pool)
		st.close = pool.Close
		return st, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// PostgresStorage wires the Postgres repositories over an existing pool.
// The caller keeps ownership of the pool.
func PostgresStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Driver: config.StorageDriverPostgres,
		Users:  user.New(pool),
		Tweets: tweet.New(pool),
		Likes:  like.New(pool),
		Tx:     postgres.NewTxManager(pool),
		Pinger: pool,
	}
}
