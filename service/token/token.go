package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pandodao/safe-ledger/core"
)

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

func New(secret []byte) core.TokenService {
	return &service{secret: secret}
}

type service struct {
	secret []byte
}

func (s *service) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})

	return t.SignedString(s.secret)
}

// Verify never surfaces parse errors; every failure resolves to
// core.ErrTokenExpired or core.ErrTokenInvalid.
func (s *service) Verify(tokenString string) (string, error) {
	c := &claims{}
	t, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", core.ErrTokenExpired
		}

		return "", core.ErrTokenInvalid
	}

	if !t.Valid || c.UserID == "" {
		return "", core.ErrTokenInvalid
	}

	return c.UserID, nil
}
