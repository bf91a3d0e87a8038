package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores bytes past 72
	maxEmailLen    = 254
	maxFullNameLen = 100
)

// SignupInput holds parameters for the signup operation.
type SignupInput struct {
	Email     string
	Password  string
	FullName  string
	BirthDate string
}

func (i *SignupInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FullName = strings.TrimSpace(i.FullName)
}

// Validate validates the signup input.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.FullName == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	} else if len(i.FullName) > maxFullNameLen {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}

	if len(i.BirthDate) > 32 {
		errs = append(errs, domain.FieldError{Field: "birth_date", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SigninInput holds parameters for the signin operation.
type SigninInput struct {
	Email    string
	Password string
}

// Validate validates the signin input.
func (i SigninInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}
