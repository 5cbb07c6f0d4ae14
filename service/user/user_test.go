package user

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pandodao/safe-ledger/core"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryUserStore struct {
	mux   sync.Mutex
	users map[string]*core.User
	next  int
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]*core.User{}}
}

func (s *memoryUserStore) Create(_ context.Context, user *core.User, account *core.Account) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return core.ErrUserExists
	}

	s.next++
	user.ID = fmt.Sprintf("user-%d", s.next)
	account.ID = fmt.Sprintf("account-%d", s.next)
	account.UserID = user.ID
	s.users[user.Username] = user
	return nil
}

func (s *memoryUserStore) FindByUsername(_ context.Context, username string) (*core.User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	user, ok := s.users[username]
	if !ok {
		return nil, core.ErrUserNotFound
	}

	return user, nil
}

type stubTokens struct {
	issued []string
}

func (s *stubTokens) Issue(userID string, _ time.Duration) (string, error) {
	s.issued = append(s.issued, userID)
	return "token-for-" + userID, nil
}

func (s *stubTokens) Verify(token string) (string, error) {
	return "", core.ErrTokenInvalid
}

func TestRegister_HashesPassword(t *testing.T) {
	store := newMemoryUserStore()
	svc := New(store, &stubTokens{}, Config{})

	user, account, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, user.ID, account.UserID)
	require.True(t, account.Balance.IsZero())

	require.NotContains(t, string(user.PasswordHash), "secret1", "plaintext must never be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("secret1")))
}

func TestRegister_Duplicate(t *testing.T) {
	store := newMemoryUserStore()
	svc := New(store, &stubTokens{}, Config{})
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice", "other")
	require.ErrorIs(t, err, core.ErrUserExists)
}

func TestLogin(t *testing.T) {
	store := newMemoryUserStore()
	tokens := &stubTokens{}
	svc := New(store, tokens, Config{})
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, "token-for-"+user.ID, token)

	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, core.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "secret1")
	require.ErrorIs(t, err, core.ErrInvalidCredentials)

	require.Len(t, tokens.issued, 1, "failed logins must not issue tokens")
}
