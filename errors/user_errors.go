// errors/user_errors.go
package errors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserData = errors.New("invalid user data")
	ErrUserConflict    = errors.New("user conflict")
	// ErrUserRoleLink marks a failure reading or rewriting a user's role links.
	ErrUserRoleLink = errors.New("user role link failed")
)
