package auth

import "github.com/heartmarshall/tweeter-backend/internal/domain"

// AuthResult is returned by Signup and Signin.
type AuthResult struct {
	Token string
	User  *domain.User
}
