package account

import (
	"database/sql"
	"errors"

	"github.com/pandodao/safe-ledger/core"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{
	"id",
	"user_id",
	"balance",
	"created_at",
	"updated_at",
}

func scanAccount(scanner scanner, account *core.Account) error {
	if err := scanner.Scan(
		&account.ID,
		&account.UserID,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrAccountNotFound
		}

		return err
	}

	return nil
}
