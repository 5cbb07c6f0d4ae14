package ledger

import (
	"errors"
	"testing"

	"github.com/pandodao/safe-ledger/core"
	"github.com/shopspring/decimal"
)

func Test_signedDelta(t *testing.T) {
	newDecimal := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}

	tests := []struct {
		name    string
		amount  decimal.Decimal
		kind    core.TransactionKind
		want    decimal.Decimal
		wantErr error
	}{
		{
			name:   "deposit",
			amount: newDecimal("100"),
			kind:   core.TransactionKindDeposit,
			want:   newDecimal("100"),
		},
		{
			name:   "withdrawal",
			amount: newDecimal("40"),
			kind:   core.TransactionKindWithdrawal,
			want:   newDecimal("-40"),
		},
		{
			name:   "fractional withdrawal",
			amount: newDecimal("0.00000001"),
			kind:   core.TransactionKindWithdrawal,
			want:   newDecimal("-0.00000001"),
		},
		{
			name:    "unknown kind",
			amount:  newDecimal("1"),
			kind:    core.TransactionKind(42),
			wantErr: core.ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := signedDelta(tt.amount, tt.kind)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("signedDelta() err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("signedDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}
