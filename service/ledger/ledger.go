package ledger

import (
	"context"

	"github.com/pandodao/safe-ledger/core"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

func New(store core.LedgerStore) core.LedgerService {
	return &service{store: store}
}

type service struct {
	store core.LedgerStore
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	// at most 8 decimal places
	if amount.Truncate(8).LessThan(amount) {
		return core.ErrInvalidAmount
	}

	return nil
}

func validateKind(kind core.TransactionKind) error {
	switch kind {
	case core.TransactionKindDeposit, core.TransactionKindWithdrawal:
		return nil
	default:
		return core.ErrInvalidKind
	}
}

func (s *service) Apply(ctx context.Context, accountID string, amount decimal.Decimal, kind core.TransactionKind) (*core.Receipt, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	if err := validateKind(kind); err != nil {
		return nil, err
	}

	transaction := &core.Transaction{
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
	}

	balance, err := s.store.Apply(ctx, transaction)
	if err != nil {
		return nil, err
	}

	return &core.Receipt{
		Transaction: transaction,
		Balance:     balance,
	}, nil
}

func (s *service) ListAccount(ctx context.Context, accountID string, limit int) ([]*core.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	} else if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.store.ListAccount(ctx, accountID, limit)
}
