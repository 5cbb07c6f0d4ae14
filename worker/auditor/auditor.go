package auditor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pandodao/safe-ledger/core"
	"golang.org/x/sync/errgroup"
)

const propertyAuditOffset = "audit_offset"

// Auditor periodically verifies that every account balance equals the sum
// of its recorded transaction deltas. Drift is logged, never repaired.
type Auditor struct {
	accounts   core.AccountStore
	ledgers    core.LedgerStore
	properties core.PropertyStore
	logger     *slog.Logger
}

func New(
	accounts core.AccountStore,
	ledgers core.LedgerStore,
	properties core.PropertyStore,
	logger *slog.Logger,
) *Auditor {
	return &Auditor{
		accounts:   accounts,
		ledgers:    ledgers,
		properties: properties,
		logger:     logger.With("worker", "auditor"),
	}
}

func (w *Auditor) Run(ctx context.Context) error {
	w.logger.Info("auditor start")

	for {
		dur := time.Minute
		if w.run(ctx) == nil {
			dur = time.Second
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
		}
	}
}

func (w *Auditor) run(ctx context.Context) error {
	var offset string
	if err := w.properties.Get(ctx, propertyAuditOffset, &offset); err != nil {
		w.logger.Error("properties.Get", "err", err)
		return err
	}

	const limit = 64
	accounts, err := w.accounts.List(ctx, offset, limit)
	if err != nil {
		w.logger.Error("accounts.List", "err", err)
		return err
	}

	if len(accounts) == 0 {
		if offset != "" {
			// wrap around for the next sweep
			if err := w.properties.Set(ctx, propertyAuditOffset, ""); err != nil {
				w.logger.Error("properties.Set", "err", err)
				return err
			}
		}

		return fmt.Errorf("accounts dry")
	}

	var g errgroup.Group
	g.SetLimit(8)

	for idx := range accounts {
		account := accounts[idx]
		g.Go(func() error {
			return w.checkAccount(ctx, account)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	offset = accounts[len(accounts)-1].ID
	if err := w.properties.Set(ctx, propertyAuditOffset, offset); err != nil {
		w.logger.Error("properties.Set", "err", err)
		return err
	}

	return nil
}

func (w *Auditor) checkAccount(ctx context.Context, account *core.Account) error {
	sum, err := w.ledgers.SumAccount(ctx, account.ID)
	if err != nil {
		w.logger.Error("ledgers.SumAccount", "err", err)
		return err
	}

	if sum.Equal(account.Balance) {
		return nil
	}

	// a transaction committing between the two reads looks like drift;
	// re-read both before reporting
	account, err = w.accounts.Find(ctx, account.ID)
	if err != nil {
		return err
	}

	sum, err = w.ledgers.SumAccount(ctx, account.ID)
	if err != nil {
		return err
	}

	if !sum.Equal(account.Balance) {
		w.logger.Error("balance drift",
			"account", account.ID,
			"balance", account.Balance,
			"sum", sum,
		)
	}

	return nil
}
