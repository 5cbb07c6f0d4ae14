package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Account balance is mutated exclusively through LedgerStore.Apply.
type Account struct {
	ID        string          `json:"id,omitempty"`
	UserID    string          `json:"user_id,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

type AccountStore interface {
	Find(ctx context.Context, id string) (*Account, error)
	FindByUser(ctx context.Context, userID string) (*Account, error)
	// List returns accounts with id > offset ordered by id.
	List(ctx context.Context, offset string, limit int) ([]*Account, error)
}
