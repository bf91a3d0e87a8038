// Package like implements the like ledger using PostgreSQL.
package like

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/tweeter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

const likesTable = "likes"

var likeColumns = []string{"id", "user_id", "tweet_id", "created_at"}

// Repo provides like persistence backed by PostgreSQL. Likes live in one
// table that is also the source of a tweet's like collection, so the two
// views can never disagree.
type Repo struct {
	db postgres.Querier
}

// New creates a new like repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByUserAndTweet returns the like userID placed on tweetID.
func (r *Repo) GetByUserAndTweet(ctx context.Context, userID, tweetID uuid.UUID) (*domain.Like, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(likeColumns...).
		From(likesTable).
		Where(sq.Eq{"user_id": userID, "tweet_id": tweetID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "like", tweetID)
	}

	l, err := scanLike(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "like", tweetID)
	}
	return &l, nil
}

// Create inserts a like. If the (user, tweet) pair already has one, the
// insert is skipped and domain.ErrAlreadyExists is returned without
// aborting the surrounding transaction.
func (r *Repo) Create(ctx context.Context, l *domain.Like) (*domain.Like, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(likesTable).
		Columns(likeColumns...).
		Values(l.ID, l.UserID, l.TweetID, l.CreatedAt).
		Suffix("ON CONFLICT (user_id, tweet_id) DO NOTHING RETURNING id, user_id, tweet_id, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "like", l.TweetID)
	}

	created, err := scanLike(q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("like %s/%s: %w", l.UserID, l.TweetID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "like", l.TweetID)
	}
	return &created, nil
}

// Delete removes a like by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(likesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "like", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "like", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "like", id)
	}
	return nil
}

// ListByTweet returns the likes of a tweet in creation order.
func (r *Repo) ListByTweet(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(likeColumns...).
		From(likesTable).
		Where(sq.Eq{"tweet_id": tweetID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "likes of tweet", tweetID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "likes of tweet", tweetID)
	}
	likes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Like, error) {
		return scanLike(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "likes of tweet", tweetID)
	}
	return likes, nil
}

func scanLike(row pgx.Row) (domain.Like, error) {
	var l domain.Like
	err := row.Scan(&l.ID, &l.UserID, &l.TweetID, &l.CreatedAt)
	return l, err
}
