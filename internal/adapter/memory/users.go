package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// UserStore is the identity store over a Store.
type UserStore struct {
	s *Store
}

// GetByID returns a copy of the user.
func (r *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	u, ok := r.s.state.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	u = copyUser(u)
	return &u, nil
}

// GetByEmail looks a user up by login identity, ignoring case.
func (r *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	key := normalizeEmail(email)
	id, ok := r.s.state.emails[key]
	if !ok {
		return nil, notFound("user", key)
	}
	u := copyUser(r.s.state.users[id])
	return &u, nil
}

// GetByIDs returns the users that exist among ids, in no particular order.
func (r *UserStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	out := make([]domain.User, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := r.s.state.users[id]; ok {
			out = append(out, copyUser(u))
		}
	}
	return out, nil
}

// Search matches query case-insensitively against full name and email.
// Results are ordered by lower-cased full name, then id.
func (r *UserStore) Search(ctx context.Context, query string) ([]domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.read(ctx)()

	needle := strings.ToLower(query)
	out := []domain.User{}
	for _, u := range r.s.state.users {
		if strings.Contains(strings.ToLower(u.FullName), needle) || strings.Contains(u.Email, needle) {
			out = append(out, copyUser(u))
		}
	}
	slices.SortFunc(out, func(a, b domain.User) int {
		if c := strings.Compare(strings.ToLower(a.FullName), strings.ToLower(b.FullName)); c != 0 {
			return c
		}
		return compareIDs(a.ID, b.ID)
	})
	return out, nil
}

// Create stores a new user. The email is stored lower-cased and must be
// unused.
func (r *UserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	email := normalizeEmail(u.Email)
	if _, ok := st.users[u.ID]; ok {
		return nil, alreadyExists("user", u.ID)
	}
	if _, ok := st.emails[email]; ok {
		return nil, alreadyExists("user", email)
	}

	created := copyUser(*u)
	created.Email = email
	created.Followers = []uuid.UUID{}
	created.Followings = []uuid.UUID{}
	st.users[created.ID] = created
	st.emails[email] = created.ID

	out := copyUser(created)
	return &out, nil
}

// UpdateProfile applies upd to the stored user and returns the result.
func (r *UserStore) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	defer r.s.write(ctx)()

	u, ok := r.s.state.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	upd.Apply(&u)
	r.s.state.users[id] = u

	out := copyUser(u)
	return &out, nil
}

// LockForUpdate only checks that every user exists; the transaction already
// holds the store lock.
func (r *UserStore) LockForUpdate(ctx context.Context, ids ...uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.read(ctx)()

	for _, id := range ids {
		if _, ok := r.s.state.users[id]; !ok {
			return notFound("user", id)
		}
	}
	return nil
}

// AddFollower records followerID in userID's follower set. Idempotent.
func (r *UserStore) AddFollower(ctx context.Context, userID, followerID uuid.UUID) error {
	return r.editEdge(ctx, userID, followerID, func(u *domain.User) *[]uuid.UUID { return &u.Followers }, true)
}

// RemoveFollower drops followerID from userID's follower set.
func (r *UserStore) RemoveFollower(ctx context.Context, userID, followerID uuid.UUID) error {
	return r.editEdge(ctx, userID, followerID, func(u *domain.User) *[]uuid.UUID { return &u.Followers }, false)
}

// AddFollowing records followingID in userID's following set. Idempotent.
func (r *UserStore) AddFollowing(ctx context.Context, userID, followingID uuid.UUID) error {
	return r.editEdge(ctx, userID, followingID, func(u *domain.User) *[]uuid.UUID { return &u.Followings }, true)
}

// RemoveFollowing drops followingID from userID's following set.
func (r *UserStore) RemoveFollowing(ctx context.Context, userID, followingID uuid.UUID) error {
	return r.editEdge(ctx, userID, followingID, func(u *domain.User) *[]uuid.UUID { return &u.Followings }, false)
}

func (r *UserStore) editEdge(ctx context.Context, userID, otherID uuid.UUID, set func(*domain.User) *[]uuid.UUID, add bool) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	defer r.s.write(ctx)()

	st := r.s.state
	u, ok := st.users[userID]
	if !ok {
		return notFound("user", userID)
	}
	if _, ok := st.users[otherID]; !ok {
		return notFound("user", otherID)
	}

	ids := set(&u)
	has := slices.Contains(*ids, otherID)
	switch {
	case add && !has:
		*ids = append(*ids, otherID)
	case !add && has:
		*ids = slices.DeleteFunc(*ids, func(id uuid.UUID) bool { return id == otherID })
	default:
		return nil
	}
	st.users[userID] = u
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
