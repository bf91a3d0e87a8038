// Package user implements the user (identity) store using PostgreSQL.
package user

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
	usersTable      = "users"
	followersTable  = "user_followers"
	followingsTable = "user_followings"
)

var userColumns = []string{
	"id", "email", "password_hash", "full_name", "bio", "location", "website",
	"birth_date", "mobile", "image", "background_image", "login_with_google",
	"verification_status", "verification_started_at", "verification_ends_at",
	"verification_plan_type", "created_at", "updated_at",
}

// Repo provides user and follow-graph persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// GetByID returns a user with both follow sets loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	users, err := r.selectUsers(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if len(users) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return &users[0], nil
}

// GetByEmail returns a user by login identity. Emails are stored lower-cased.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	users, err := r.selectUsers(ctx, sq.Eq{"email": email})
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	if len(users) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "user", email)
	}
	return &users[0], nil
}

// GetByIDs returns the users matching ids in no particular order. Missing
// ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	users, err := r.selectUsers(ctx, sq.Eq{"id": ids})
	if err != nil {
		return nil, postgres.MapError(err, "users", "batch")
	}
	return users, nil
}

// Search returns users whose full name or email contains query,
// case-insensitively, ordered by full name then id.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.User, error) {
	pattern := "%" + escapeLike(query) + "%"

	users, err := r.selectUsers(ctx, sq.Or{
		sq.ILike{"full_name": pattern},
		sq.ILike{"email": pattern},
	}, "lower(full_name) ASC", "id ASC")
	if err != nil {
		return nil, postgres.MapError(err, "user search", query)
	}
	return users, nil
}

// Create inserts a new user. A taken email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			u.ID, strings.ToLower(u.Email), u.PasswordHash, u.FullName, u.Bio, u.Location, u.Website,
			u.BirthDate, u.Mobile, u.Image, u.BackgroundImage, u.LoginWithGoogle,
			u.Verification.Status, u.Verification.StartedAt, u.Verification.EndsAt,
			u.Verification.PlanType, u.CreatedAt, u.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &created, nil
}

// UpdateProfile applies every non-nil field of upd and returns the updated
// user with follow sets loaded.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(usersTable).
		Set("updated_at", upd.UpdatedAt).
		Where(sq.Eq{"id": id})

	for _, c := range profileColumns(upd) {
		b = b.Set(c.name, c.value)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "user", id)
	}

	return r.GetByID(ctx, id)
}

// LockForUpdate takes row locks on the given users in ascending id order,
// so that concurrent callers locking the same pair cannot deadlock.
// Returns domain.ErrNotFound if any of the users is missing.
func (r *Repo) LockForUpdate(ctx context.Context, ids ...uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	unique := uniqueIDs(ids)

	sql, args, err := postgres.Builder().
		Select("id").
		From(usersTable).
		Where(sq.Eq{"id": unique}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user lock", unique)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user lock", unique)
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return postgres.MapError(err, "user lock", unique)
	}

	if len(locked) != len(unique) {
		return postgres.MapError(pgx.ErrNoRows, "user lock", unique)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Follow graph. Each side is written independently; inserts are idempotent.
// ---------------------------------------------------------------------------

// AddFollower records followerID in userID's follower set.
func (r *Repo) AddFollower(ctx context.Context, userID, followerID uuid.UUID) error {
	return r.insertEdge(ctx, followersTable, "follower_id", userID, followerID)
}

// RemoveFollower removes followerID from userID's follower set.
func (r *Repo) RemoveFollower(ctx context.Context, userID, followerID uuid.UUID) error {
	return r.deleteEdge(ctx, followersTable, "follower_id", userID, followerID)
}

// AddFollowing records followingID in userID's following set.
func (r *Repo) AddFollowing(ctx context.Context, userID, followingID uuid.UUID) error {
	return r.insertEdge(ctx, followingsTable, "following_id", userID, followingID)
}

// RemoveFollowing removes followingID from userID's following set.
func (r *Repo) RemoveFollowing(ctx context.Context, userID, followingID uuid.UUID) error {
	return r.deleteEdge(ctx, followingsTable, "following_id", userID, followingID)
}

func (r *Repo) insertEdge(ctx context.Context, table, column string, userID, otherID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", column, "created_at").
		Values(userID, otherID, time.Now().UTC()).
		Suffix("ON CONFLICT (user_id, " + column + ") DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, table, userID)
	}

	_, err = q.Exec(ctx, sql, args...)
	return postgres.MapError(err, table, userID)
}

func (r *Repo) deleteEdge(ctx context.Context, table, column string, userID, otherID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"user_id": userID, column: otherID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, table, userID)
	}

	_, err = q.Exec(ctx, sql, args...)
	return postgres.MapError(err, table, userID)
}

// ---------------------------------------------------------------------------
// Loading helpers
// ---------------------------------------------------------------------------

// selectUsers loads user rows matching where, then attaches follow sets.
func (r *Repo) selectUsers(ctx context.Context, where sq.Sqlizer, orderBy ...string) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(userColumns...).From(usersTable).Where(where)
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
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return users, nil
	}

	ids := make([]uuid.UUID, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}

	followers, err := r.loadEdges(ctx, q, followersTable, "follower_id", ids)
	if err != nil {
		return nil, err
	}
	followings, err := r.loadEdges(ctx, q, followingsTable, "following_id", ids)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Followers = nonNil(followers[users[i].ID])
		users[i].Followings = nonNil(followings[users[i].ID])
	}
	return users, nil
}

// loadEdges returns user_id -> other ids, in insertion order.
func (r *Repo) loadEdges(ctx context.Context, q postgres.Querier, table, column string, ids []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Select("user_id", column).
		From(table).
		Where(sq.Eq{"user_id": ids}).
		OrderBy("created_at", column).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]uuid.UUID, len(ids))
	for rows.Next() {
		var userID, otherID uuid.UUID
		if err := rows.Scan(&userID, &otherID); err != nil {
			return nil, err
		}
		result[userID] = append(result[userID], otherID)
	}
	return result, rows.Err()
}

type column struct {
	name  string
	value any
}

// profileColumns lists the columns set by upd, in a stable order.
func profileColumns(upd domain.ProfileUpdate) []column {
	fields := []struct {
		name  string
		value *string
	}{
		{"full_name", upd.FullName},
		{"bio", upd.Bio},
		{"location", upd.Location},
		{"website", upd.Website},
		{"birth_date", upd.BirthDate},
		{"image", upd.Image},
		{"background_image", upd.BackgroundImage},
	}

	cols := make([]column, 0, len(fields))
	for _, f := range fields {
		if f.value != nil {
			cols = append(cols, column{name: f.name, value: *f.value})
		}
	}
	return cols
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Bio, &u.Location, &u.Website,
		&u.BirthDate, &u.Mobile, &u.Image, &u.BackgroundImage, &u.LoginWithGoogle,
		&u.Verification.Status, &u.Verification.StartedAt, &u.Verification.EndsAt,
		&u.Verification.PlanType, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so the query is matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
