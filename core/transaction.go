package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind uint8

const (
	_ TransactionKind = iota
	TransactionKindDeposit
	TransactionKindWithdrawal
)

func ParseTransactionKind(s string) (TransactionKind, error) {
	switch s {
	case "deposit":
		return TransactionKindDeposit, nil
	case "withdrawal":
		return TransactionKindWithdrawal, nil
	default:
		return 0, ErrInvalidKind
	}
}

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindDeposit:
		return "deposit"
	case TransactionKindWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

func (k TransactionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TransactionKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	v, err := ParseTransactionKind(s)
	if err != nil {
		return err
	}

	*k = v
	return nil
}

// Transaction is an immutable ledger record. Amount is always positive;
// the sign applied to the balance is derived from Kind.
type Transaction struct {
	ID        uint64          `json:"id,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	AccountID string          `json:"account_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      TransactionKind `json:"kind"`
}

// Receipt reports the outcome of an applied transaction.
type Receipt struct {
	Transaction *Transaction    `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

type LedgerStore interface {
	// Apply records the transaction and adjusts the account balance in one
	// atomic step, returning the new balance. Concurrent applies on the
	// same account are serialized; a transaction row is never visible
	// without its balance delta.
	Apply(ctx context.Context, transaction *Transaction) (decimal.Decimal, error)
	ListAccount(ctx context.Context, accountID string, limit int) ([]*Transaction, error)
	// SumAccount returns the sum of signed deltas recorded for the account.
	SumAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

type LedgerService interface {
	Apply(ctx context.Context, accountID string, amount decimal.Decimal, kind TransactionKind) (*Receipt, error)
	ListAccount(ctx context.Context, accountID string, limit int) ([]*Transaction, error)
}
