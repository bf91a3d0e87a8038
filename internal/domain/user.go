package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Users are never hard-deleted.
//
// Followers and Followings are stored independently of each other; keeping
// the two sides symmetric is the job of the social graph service.
type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	FullName        string
	Bio             string
	Location        string
	Website         string
	BirthDate       string
	Mobile          string
	Image           string
	BackgroundImage string
	LoginWithGoogle bool
	Verification    Verification
	Followers       []uuid.UUID
	Followings      []uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Verification describes the paid verification plan of a user.
type Verification struct {
	Status    bool
	StartedAt *time.Time
	EndsAt    *time.Time
	PlanType  string
}

// DefaultVerification is assigned to every newly registered user.
func DefaultVerification() Verification {
	return Verification{PlanType: PlanTypeNone}
}

// Verification plan types.
const (
	PlanTypeNone    = "none"
	PlanTypeMonthly = "monthly"
	PlanTypeYearly  = "yearly"
)

// HasFollower reports whether id is in the user's follower set.
func (u *User) HasFollower(id uuid.UUID) bool {
	return slices.Contains(u.Followers, id)
}

// HasFollowing reports whether id is in the user's following set.
func (u *User) HasFollowing(id uuid.UUID) bool {
	return slices.Contains(u.Followings, id)
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched.
type ProfileUpdate struct {
	FullName        *string
	Bio             *string
	Location        *string
	Website         *string
	BirthDate       *string
	Image           *string
	BackgroundImage *string
	UpdatedAt       time.Time
}

// IsEmpty reports whether the update changes no field.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FullName == nil && p.Bio == nil && p.Location == nil && p.Website == nil &&
		p.BirthDate == nil && p.Image == nil && p.BackgroundImage == nil
}

// Apply copies every non-nil field of p onto u.
func (p ProfileUpdate) Apply(u *User) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.FullName, p.FullName)
	set(&u.Bio, p.Bio)
	set(&u.Location, p.Location)
	set(&u.Website, p.Website)
	set(&u.BirthDate, p.BirthDate)
	set(&u.Image, p.Image)
	set(&u.BackgroundImage, p.BackgroundImage)
	if !p.UpdatedAt.IsZero() {
		u.UpdatedAt = p.UpdatedAt
	}
}
