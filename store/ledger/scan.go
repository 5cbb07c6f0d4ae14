package ledger

import "github.com/pandodao/safe-ledger/core"

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{
	"id",
	"created_at",
	"account_id",
	"amount",
	"kind",
}

func scanTransaction(scanner scanner, transaction *core.Transaction) error {
	return scanner.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.AccountID,
		&transaction.Amount,
		&transaction.Kind,
	)
}
