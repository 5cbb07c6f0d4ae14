package account

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/safe-ledger/core"
	"github.com/tsenart/nap"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func New(db *nap.DB) core.AccountStore {
	return &accountStore{db: db}
}

type accountStore struct {
	db *nap.DB
}

func (s *accountStore) Find(ctx context.Context, id string) (*core.Account, error) {
	return s.findWhere(ctx, sq.Eq{"id": id})
}

func (s *accountStore) FindByUser(ctx context.Context, userID string) (*core.Account, error) {
	return s.findWhere(ctx, sq.Eq{"user_id": userID})
}

func (s *accountStore) findWhere(ctx context.Context, pred any) (*core.Account, error) {
	b := psql.Select(scanColumns...).From("accounts").Where(pred)
	stmt, args := b.MustSql()
	row := s.db.QueryRowContext(ctx, stmt, args...)

	var account core.Account
	if err := scanAccount(row, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (s *accountStore) List(ctx context.Context, offset string, limit int) ([]*core.Account, error) {
	b := psql.Select(scanColumns...).
		From("accounts").
		OrderBy("id").
		Limit(uint64(limit))

	if offset != "" {
		b = b.Where(sq.Gt{"id": offset})
	}

	stmt, args := b.MustSql()
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var accounts []*core.Account
	for rows.Next() {
		var account core.Account
		if err := scanAccount(rows, &account); err != nil {
			return nil, err
		}

		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}
