package auditor

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/pandodao/safe-ledger/core"
	"github.com/shopspring/decimal"
)

type fakeAccounts struct {
	accounts []*core.Account
}

func (f *fakeAccounts) Find(_ context.Context, id string) (*core.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, core.ErrAccountNotFound
}

func (f *fakeAccounts) FindByUser(_ context.Context, userID string) (*core.Account, error) {
	return nil, core.ErrAccountNotFound
}

func (f *fakeAccounts) List(_ context.Context, offset string, limit int) ([]*core.Account, error) {
	var out []*core.Account
	for _, account := range f.accounts {
		if account.ID > offset && len(out) < limit {
			out = append(out, account)
		}
	}

	return out, nil
}

type fakeLedgers struct {
	sums map[string]decimal.Decimal
}

func (f *fakeLedgers) Apply(_ context.Context, _ *core.Transaction) (decimal.Decimal, error) {
	panic("auditor must never apply transactions")
}

func (f *fakeLedgers) ListAccount(_ context.Context, _ string, _ int) ([]*core.Transaction, error) {
	return nil, nil
}

func (f *fakeLedgers) SumAccount(_ context.Context, accountID string) (decimal.Decimal, error) {
	return f.sums[accountID], nil
}

type fakeProperties struct {
	values map[string]string
}

func (f *fakeProperties) Get(_ context.Context, key string, value any) error {
	raw, ok := f.values[key]
	if !ok {
		return nil
	}

	return json.Unmarshal([]byte(raw), value)
}

func (f *fakeProperties) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.values[key] = string(b)
	return nil
}

func TestRun_ReportsDrift(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*core.Account{
		{ID: "a1", Balance: decimal.NewFromInt(60)},
		{ID: "a2", Balance: decimal.NewFromInt(50)},
	}}
	ledgers := &fakeLedgers{sums: map[string]decimal.Decimal{
		"a1": decimal.NewFromInt(60),
		"a2": decimal.NewFromInt(40), // drifted
	}}
	properties := &fakeProperties{values: map[string]string{}}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w := New(accounts, ledgers, properties, logger)
	if err := w.run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "balance drift") {
		t.Fatalf("expected drift report, got: %s", out)
	}
	if !strings.Contains(out, "account=a2") {
		t.Fatalf("expected drift on a2, got: %s", out)
	}
	if strings.Contains(out, "account=a1") {
		t.Fatalf("a1 is consistent, got: %s", out)
	}

	if got := properties.values[propertyAuditOffset]; got != `"a2"` {
		t.Fatalf("offset = %s, want %q", got, "a2")
	}
}

func TestRun_WrapsAround(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*core.Account{
		{ID: "a1", Balance: decimal.Zero},
	}}
	ledgers := &fakeLedgers{sums: map[string]decimal.Decimal{}}
	properties := &fakeProperties{values: map[string]string{
		propertyAuditOffset: `"a1"`,
	}}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	w := New(accounts, ledgers, properties, logger)

	if err := w.run(context.Background()); err == nil {
		t.Fatal("expected accounts dry error")
	}

	if got := properties.values[propertyAuditOffset]; got != `""` {
		t.Fatalf("offset = %s, want reset", got)
	}
}
