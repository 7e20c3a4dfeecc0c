package auth

import "context"

// SessionTestChecker is an in-memory Checker for tests and local development.
type SessionTestChecker struct {
	Sessions map[string]int
}

func NewSessionTestChecker() *SessionTestChecker {
	return &SessionTestChecker{
		map[string]int{},
	}
}

func (c *SessionTestChecker) UserID(_ context.Context, token string) (int, error) {
	if userID, ok := c.Sessions[token]; !ok {
		return 0, ErrSessionNotFound
	} else {
		return userID, nil
	}
}
