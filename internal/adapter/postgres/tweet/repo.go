// Package tweet implements the content store (tweets, replies, retweets)
// using PostgreSQL.
package tweet

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/tweeter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

const (
	tweetsTable   = "tweets"
	repliesTable  = "tweet_replies"
	retweetsTable = "tweet_retweets"
	likesTable    = "likes"
)

var tweetColumns = []string{
	"id", "content", "image", "video", "author_id", "is_tweet", "is_reply", "reply_for", "created_at",
}

// Newest first; id breaks ties between equal timestamps.
var newestFirst = []string{"created_at DESC", "id DESC"}

// Repo provides tweet persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tweet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a tweet row. Owned collections on t are ignored; a new
// tweet starts with none.
func (r *Repo) Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(tweetsTable).
		Columns(tweetColumns...).
		Values(t.ID, t.Content, t.Image, t.Video, t.AuthorID, t.IsTweet, t.IsReply, t.ReplyForID, t.CreatedAt).
		Suffix("RETURNING " + strings.Join(tweetColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "tweet", t.ID)
	}

	created, err := scanTweet(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tweet", t.ID)
	}
	created.Likes = []domain.Like{}
	created.ReplyIDs = []uuid.UUID{}
	created.RetweetUserIDs = []uuid.UUID{}
	return &created, nil
}

// GetByID returns a tweet with likes, replies and retweeters loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	tweets, err := r.selectTweets(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "tweet", id)
	}
	if len(tweets) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "tweet", id)
	}
	return &tweets[0], nil
}

// GetByIDs returns the tweets matching ids in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tweet, error) {
	if len(ids) == 0 {
		return []domain.Tweet{}, nil
	}
	tweets, err := r.selectTweets(ctx, sq.Eq{"id": ids})
	if err != nil {
		return nil, postgres.MapError(err, "tweets", "batch")
	}
	return tweets, nil
}

// LockForUpdate takes a row lock on the tweet for the rest of the current
// transaction. Returns domain.ErrNotFound if the tweet is missing.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id").
		From(tweetsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "tweet", id)
	}

	var locked uuid.UUID
	return postgres.MapError(q.QueryRow(ctx, sql, args...).Scan(&locked), "tweet", id)
}

// AddReply appends replyID to the parent's reply collection.
func (r *Repo) AddReply(ctx context.Context, parentID, replyID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(repliesTable).
		Columns("tweet_id", "reply_id", "created_at").
		Values(parentID, replyID, time.Now().UTC()).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "tweet reply", parentID)
	}

	_, err = q.Exec(ctx, sql, args...)
	return postgres.MapError(err, "tweet reply", parentID)
}

// AddRetweet adds userID to the tweet's retweet set. Idempotent.
func (r *Repo) AddRetweet(ctx context.Context, tweetID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(retweetsTable).
		Columns("tweet_id", "user_id", "created_at").
		Values(tweetID, userID, time.Now().UTC()).
		Suffix("ON CONFLICT (tweet_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "retweet", tweetID)
	}

	_, err = q.Exec(ctx, sql, args...)
	return postgres.MapError(err, "retweet", tweetID)
}

// RemoveRetweet removes userID from the tweet's retweet set.
func (r *Repo) RemoveRetweet(ctx context.Context, tweetID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(retweetsTable).
		Where(sq.Eq{"tweet_id": tweetID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "retweet", tweetID)
	}

	_, err = q.Exec(ctx, sql, args...)
	return postgres.MapError(err, "retweet", tweetID)
}

// Delete removes the tweet. Likes, retweet entries and reply links cascade;
// replies themselves survive with reply_for cleared.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(tweetsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "tweet", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "tweet", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "tweet", id)
	}
	return nil
}

// ListTopLevel returns every top-level tweet, newest first.
func (r *Repo) ListTopLevel(ctx context.Context) ([]domain.Tweet, error) {
	tweets, err := r.selectTweets(ctx, sq.Eq{"is_tweet": true}, newestFirst...)
	if err != nil {
		return nil, postgres.MapError(err, "tweets", "top-level")
	}
	return tweets, nil
}

// ListByUser returns the top-level tweets authored by userID together with
// the tweets userID retweeted, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	where := sq.Or{
		sq.Eq{"author_id": userID, "is_tweet": true},
		sq.Expr("id IN (SELECT tweet_id FROM "+retweetsTable+" WHERE user_id = ?)", userID),
	}

	tweets, err := r.selectTweets(ctx, where, newestFirst...)
	if err != nil {
		return nil, postgres.MapError(err, "tweets of user", userID)
	}
	return tweets, nil
}

// ListLikedBy returns the tweets userID liked, newest first.
func (r *Repo) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	where := sq.Expr("id IN (SELECT tweet_id FROM "+likesTable+" WHERE user_id = ?)", userID)

	tweets, err := r.selectTweets(ctx, where, newestFirst...)
	if err != nil {
		return nil, postgres.MapError(err, "tweets liked by", userID)
	}
	return tweets, nil
}

// ---------------------------------------------------------------------------
// Loading helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectTweets(ctx context.Context, where sq.Sqlizer, orderBy ...string) ([]domain.Tweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(tweetColumns...).From(tweetsTable).Where(where)
	if len(orderBy) > 0 {
		b = b.OrderBy(orderBy...)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	tweets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tweet, error) {
		return scanTweet(row)
	})
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return tweets, nil
	}

	if err := loadRelations(ctx, q, tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// loadRelations attaches likes, reply ids and retweeter ids to tweets.
func loadRelations(ctx context.Context, q postgres.Querier, tweets []domain.Tweet) error {
	ids := make([]uuid.UUID, len(tweets))
	for i := range tweets {
		ids[i] = tweets[i].ID
	}

	likes, err := loadLikes(ctx, q, ids)
	if err != nil {
		return err
	}

	replies, err := loadIDPairs(ctx, q, postgres.Builder().
		Select("r.tweet_id", "r.reply_id").
		From(repliesTable+" r").
		Join(tweetsTable+" t ON t.id = r.reply_id").
		Where(sq.Eq{"r.tweet_id": ids}).
		OrderBy("t.created_at", "t.id"))
	if err != nil {
		return err
	}

	retweets, err := loadIDPairs(ctx, q, postgres.Builder().
		Select("tweet_id", "user_id").
		From(retweetsTable).
		Where(sq.Eq{"tweet_id": ids}).
		OrderBy("created_at", "user_id"))
	if err != nil {
		return err
	}

	for i := range tweets {
		id := tweets[i].ID
		tweets[i].Likes = likes[id]
		if tweets[i].Likes == nil {
			tweets[i].Likes = []domain.Like{}
		}
		tweets[i].ReplyIDs = nonNil(replies[id])
		tweets[i].RetweetUserIDs = nonNil(retweets[id])
	}
	return nil
}

func loadLikes(ctx context.Context, q postgres.Querier, tweetIDs []uuid.UUID) (map[uuid.UUID][]domain.Like, error) {
	sql, args, err := postgres.Builder().
		Select("id", "user_id", "tweet_id", "created_at").
		From(likesTable).
		Where(sq.Eq{"tweet_id": tweetIDs}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]domain.Like, len(tweetIDs))
	for rows.Next() {
		var l domain.Like
		if err := rows.Scan(&l.ID, &l.UserID, &l.TweetID, &l.CreatedAt); err != nil {
			return nil, err
		}
		result[l.TweetID] = append(result[l.TweetID], l)
	}
	return result, rows.Err()
}

// loadIDPairs runs a two-column (owner id, member id) query and groups
// members by owner, preserving row order.
func loadIDPairs(ctx context.Context, q postgres.Querier, b sq.SelectBuilder) (map[uuid.UUID][]uuid.UUID, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var owner, member uuid.UUID
		if err := rows.Scan(&owner, &member); err != nil {
			return nil, err
		}
		result[owner] = append(result[owner], member)
	}
	return result, rows.Err()
}

func scanTweet(row pgx.Row) (domain.Tweet, error) {
	var t domain.Tweet
	err := row.Scan(
		&t.ID, &t.Content, &t.Image, &t.Video, &t.AuthorID,
		&t.IsTweet, &t.IsReply, &t.ReplyForID, &t.CreatedAt,
	)
	return t, err
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
