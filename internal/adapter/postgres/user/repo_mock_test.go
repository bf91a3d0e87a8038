package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestRepo_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns))

	_, err := repo.GetByEmail(context.Background(), "  Ghost@Example.com ")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepo_GetByID_LoadsFollowSets(t *testing.T) {
	repo, mock := newMockRepo(t)

	id, follower, following := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(
			id, "alice@example.com", "hash", "Alice", "", "", "",
			"", "", "", "", false,
			false, (*time.Time)(nil), (*time.Time)(nil),
			domain.PlanTypeNone, now, now,
		))
	mock.ExpectQuery(`SELECT user_id, follower_id FROM user_followers`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "follower_id"}).AddRow(id, follower))
	mock.ExpectQuery(`SELECT user_id, following_id FROM user_followings`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "following_id"}).AddRow(id, following))

	u, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q", u.Email)
	}
	if !u.HasFollower(follower) || len(u.Followers) != 1 {
		t.Errorf("followers = %v, want [%s]", u.Followers, follower)
	}
	if !u.HasFollowing(following) || len(u.Followings) != 1 {
		t.Errorf("followings = %v, want [%s]", u.Followings, following)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	now := time.Now()
	_, err := repo.Create(context.Background(), &domain.User{
		ID: uuid.New(), Email: "dup@example.com", CreatedAt: now, UpdatedAt: now,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_LockForUpdate_MissingUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT id FROM users WHERE id IN \(\$1,\$2\) ORDER BY id FOR UPDATE`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(a))

	err := repo.LockForUpdate(context.Background(), a, b)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepo_UpdateProfile_OnlyChangedColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	bio := "hello"

	// Only updated_at and bio are set; everything else is left alone.
	mock.ExpectExec(`UPDATE users SET updated_at = \$1, bio = \$2 WHERE id = \$3`).
		WithArgs(pgxmock.AnyArg(), "hello", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := repo.UpdateProfile(context.Background(), id, domain.ProfileUpdate{
		Bio:       &bio,
		UpdatedAt: time.Now(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zero rows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"plain":   "plain",
		"50%":     `50\%`,
		"a_b":     `a\_b`,
		`back\sl`: `back\\sl`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
