package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/generic"
	"github.com/pandodao/safe-ledger/core"
	"github.com/shopspring/decimal"
	"github.com/tsenart/nap"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func New(db *nap.DB) core.LedgerStore {
	return &store{db: db}
}

type store struct {
	db *nap.DB
}

// signedDelta resolves the balance delta from the transaction kind before
// any SQL is built; the queries themselves never branch on kind.
func signedDelta(amount decimal.Decimal, kind core.TransactionKind) (decimal.Decimal, error) {
	switch kind {
	case core.TransactionKindDeposit:
		return amount, nil
	case core.TransactionKindWithdrawal:
		return amount.Neg(), nil
	default:
		return decimal.Zero, core.ErrInvalidKind
	}
}

// lockBalance reads the account balance under a row lock. The lock
// serializes concurrent applies on the same account for the rest of the
// transaction; other accounts are not blocked.
func lockBalance(ctx context.Context, tx *sql.Tx, accountID string) (decimal.Decimal, error) {
	b := psql.Select("balance").
		From("accounts").
		Where(sq.Eq{"id": accountID}).
		Suffix("FOR UPDATE")
	stmt, args := b.MustSql()

	var balance decimal.Decimal
	if err := tx.QueryRowContext(ctx, stmt, args...).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return balance, core.ErrAccountNotFound
		}

		return balance, err
	}

	return balance, nil
}

func insert(ctx context.Context, tx *sql.Tx, transaction *core.Transaction) error {
	b := psql.Insert("transactions").
		Columns("account_id", "amount", "kind").
		Values(transaction.AccountID, transaction.Amount, transaction.Kind).
		Suffix("RETURNING id, created_at")
	stmt, args := b.MustSql()
	return tx.QueryRowContext(ctx, stmt, args...).Scan(&transaction.ID, &transaction.CreatedAt)
}

func updateBalance(ctx context.Context, tx *sql.Tx, accountID string, balance decimal.Decimal) error {
	b := psql.Update("accounts").
		Set("balance", balance).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": accountID})

	result, err := b.RunWith(tx).ExecContext(ctx)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return fmt.Errorf("account row vanished under lock")
	}

	return nil
}

func (s *store) Apply(ctx context.Context, transaction *core.Transaction) (decimal.Decimal, error) {
	delta, err := signedDelta(transaction.Amount, transaction.Kind)
	if err != nil {
		return decimal.Zero, err
	}

	tx := generic.Must(s.db.Begin())
	defer tx.Rollback()

	balance, err := lockBalance(ctx, tx, transaction.AccountID)
	if err != nil {
		return decimal.Zero, err
	}

	balance = balance.Add(delta)
	if balance.IsNegative() {
		return decimal.Zero, core.ErrInsufficientFunds
	}

	if err := insert(ctx, tx, transaction); err != nil {
		return decimal.Zero, err
	}

	if err := updateBalance(ctx, tx, transaction.AccountID, balance); err != nil {
		return decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}

func (s *store) ListAccount(ctx context.Context, accountID string, limit int) ([]*core.Transaction, error) {
	b := psql.Select(scanColumns...).
		From("transactions").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("id DESC").
		Limit(uint64(limit))

	stmt, args := b.MustSql()
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var transactions []*core.Transaction
	for rows.Next() {
		var transaction core.Transaction
		if err := scanTransaction(rows, &transaction); err != nil {
			return nil, err
		}

		transactions = append(transactions, &transaction)
	}

	return transactions, rows.Err()
}

func (s *store) SumAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	b := psql.Select("kind", "COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(sq.Eq{"account_id": accountID}).
		GroupBy("kind")

	stmt, args := b.MustSql()
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return decimal.Zero, err
	}

	defer rows.Close()

	var sum decimal.Decimal
	for rows.Next() {
		var (
			kind   core.TransactionKind
			amount decimal.Decimal
		)
		if err := rows.Scan(&kind, &amount); err != nil {
			return decimal.Zero, err
		}

		delta, err := signedDelta(amount, kind)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(delta)
	}

	return sum, rows.Err()
}
