package auth

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

var _ Checker = (*SessionChecker)(nil)
var _ Checker = (*SessionTestChecker)(nil)

// Checker resolves a session token to the id of the logged-in user.
type Checker interface {
	UserID(ctx context.Context, token string) (int, error)
}
