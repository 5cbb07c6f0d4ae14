package user

import (
	"context"
	"errors"
	"time"

	"github.com/pandodao/generic"
	"github.com/pandodao/safe-ledger/core"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// compared against when the username is unknown, so lookups cost the same
// as a wrong password
var dummyHash = generic.Must(bcrypt.GenerateFromPassword([]byte("safe-ledger"), bcryptCost))

type Config struct {
	TokenTTL time.Duration
}

func New(users core.UserStore, tokens core.TokenService, cfg Config) core.UserService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}

	return &service{
		users:    users,
		tokens:   tokens,
		tokenTTL: cfg.TokenTTL,
	}
}

type service struct {
	users    core.UserStore
	tokens   core.TokenService
	tokenTTL time.Duration
}

func (s *service) Register(ctx context.Context, username, password string) (*core.User, *core.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	user := &core.User{
		Username:     username,
		PasswordHash: hash,
	}

	account := &core.Account{Balance: decimal.Zero}

	if err := s.users.Create(ctx, user, account); err != nil {
		return nil, nil, err
	}

	return user, account, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", core.ErrInvalidCredentials
		}

		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", core.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, s.tokenTTL)
}
