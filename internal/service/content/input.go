package content

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

const maxMediaRef = 2048

// CreateTweetInput holds parameters for creating a top-level tweet.
// Content is not validated; an empty tweet is accepted.
type CreateTweetInput struct {
	Content string
	Image   string
	Video   string
}

// Validate validates the create tweet input.
func (i CreateTweetInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Image) > maxMediaRef {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}
	if len(i.Video) > maxMediaRef {
		errs = append(errs, domain.FieldError{Field: "video", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateReplyInput holds parameters for replying to a tweet.
type CreateReplyInput struct {
	ParentID uuid.UUID
	Content  string
	Image    string
}

// Validate validates the create reply input.
func (i CreateReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tweet_id", Message: "required"})
	}
	if len(i.Image) > maxMediaRef {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
