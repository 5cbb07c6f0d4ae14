package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseTransactionKind(t *testing.T) {
	tests := []struct {
		in      string
		want    TransactionKind
		wantErr error
	}{
		{"deposit", TransactionKindDeposit, nil},
		{"withdrawal", TransactionKindWithdrawal, nil},
		{"transfer", 0, ErrInvalidKind},
		{"Deposit", 0, ErrInvalidKind},
		{"", 0, ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTransactionKind(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransactionKind_JSON(t *testing.T) {
	b, err := json.Marshal(TransactionKindWithdrawal)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"withdrawal"` {
		t.Fatalf("marshal = %s", b)
	}

	var k TransactionKind
	if err := json.Unmarshal([]byte(`"deposit"`), &k); err != nil {
		t.Fatal(err)
	}
	if k != TransactionKindDeposit {
		t.Fatalf("kind = %v", k)
	}

	if err := json.Unmarshal([]byte(`"transfer"`), &k); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("err = %v, want ErrInvalidKind", err)
	}
}
