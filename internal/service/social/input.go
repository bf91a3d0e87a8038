package social

import (
	"time"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// ProfilePatch holds a partial profile change. Nil and empty fields are
// left untouched.
type ProfilePatch struct {
	FullName        *string
	Bio             *string
	Location        *string
	Website         *string
	BirthDate       *string
	Image           *string
	BackgroundImage *string
}

var profileLimits = []struct {
	field string
	max   int
	get   func(ProfilePatch) *string
}{
	{"full_name", 100, func(p ProfilePatch) *string { return p.FullName }},
	{"bio", 280, func(p ProfilePatch) *string { return p.Bio }},
	{"location", 100, func(p ProfilePatch) *string { return p.Location }},
	{"website", 512, func(p ProfilePatch) *string { return p.Website }},
	{"birth_date", 32, func(p ProfilePatch) *string { return p.BirthDate }},
	{"image", 2048, func(p ProfilePatch) *string { return p.Image }},
	{"background_image", 2048, func(p ProfilePatch) *string { return p.BackgroundImage }},
}

// Validate validates the profile patch.
func (p ProfilePatch) Validate() error {
	var errs []domain.FieldError

	for _, l := range profileLimits {
		if v := l.get(p); v != nil && len(*v) > l.max {
			errs = append(errs, domain.FieldError{Field: l.field, Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toUpdate keeps only the non-empty fields of p.
func (p ProfilePatch) toUpdate(now time.Time) domain.ProfileUpdate {
	keep := func(v *string) *string {
		if v == nil || *v == "" {
			return nil
		}
		return v
	}
	return domain.ProfileUpdate{
		FullName:        keep(p.FullName),
		Bio:             keep(p.Bio),
		Location:        keep(p.Location),
		Website:         keep(p.Website),
		BirthDate:       keep(p.BirthDate),
		Image:           keep(p.Image),
		BackgroundImage: keep(p.BackgroundImage),
		UpdatedAt:       now,
	}
}
