package user

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pandodao/generic"
	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/store"
	"github.com/tsenart/nap"
	"github.com/zyedidia/generic/cache"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func New(db *nap.DB) core.UserStore {
	return &userStore{
		db:    db,
		users: cache.New[string, *core.User](256),
	}
}

type userStore struct {
	db *nap.DB

	// users are immutable after creation, safe to cache by name
	users *cache.Cache[string, *core.User]
	mux   sync.RWMutex
}

func insertUser(ctx context.Context, tx *sql.Tx, user *core.User) error {
	b := psql.Insert("users").
		Columns("id", "username", "password_hash").
		Values(user.ID, user.Username, user.PasswordHash).
		Suffix("RETURNING created_at")
	stmt, args := b.MustSql()
	return tx.QueryRowContext(ctx, stmt, args...).Scan(&user.CreatedAt)
}

func insertAccount(ctx context.Context, tx *sql.Tx, account *core.Account) error {
	b := psql.Insert("accounts").
		Columns("id", "user_id", "balance").
		Values(account.ID, account.UserID, account.Balance).
		Suffix("RETURNING created_at, updated_at")
	stmt, args := b.MustSql()
	return tx.QueryRowContext(ctx, stmt, args...).Scan(&account.CreatedAt, &account.UpdatedAt)
}

func (s *userStore) Create(ctx context.Context, user *core.User, account *core.Account) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	account.UserID = user.ID

	tx := generic.Must(s.db.Begin())
	defer tx.Rollback()

	if err := insertUser(ctx, tx, user); err != nil {
		if store.IsErrUniqueViolation(err) {
			return core.ErrUserExists
		}

		return err
	}

	if err := insertAccount(ctx, tx, account); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *userStore) FindByUsername(ctx context.Context, username string) (*core.User, error) {
	s.mux.RLock()
	u, ok := s.users.Get(username)
	s.mux.RUnlock()

	if ok {
		return u, nil
	}

	u, err := s.find(ctx, username)
	if err != nil {
		return nil, err
	}

	s.mux.Lock()
	s.users.Put(username, u)
	s.mux.Unlock()

	return u, nil
}

func (s *userStore) find(ctx context.Context, username string) (*core.User, error) {
	b := psql.Select("id", "username", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"username": username})
	stmt, args := b.MustSql()
	row := s.db.QueryRowContext(ctx, stmt, args...)

	var user core.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}
