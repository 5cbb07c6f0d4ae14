package core

import "time"

// TokenService issues and verifies stateless session tokens. Verify fails
// closed: every failure resolves to ErrTokenInvalid or ErrTokenExpired.
type TokenService interface {
	Issue(userID string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}
