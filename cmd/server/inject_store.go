package main

import (
	"github.com/google/wire"
	"github.com/pandodao/safe-ledger/store/account"
	"github.com/pandodao/safe-ledger/store/db"
	"github.com/pandodao/safe-ledger/store/ledger"
	"github.com/pandodao/safe-ledger/store/property"
	"github.com/pandodao/safe-ledger/store/user"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
)

var storeSet = wire.NewSet(
	provideDB,
	account.New,
	ledger.New,
	property.New,
	user.New,
)

func provideDB(v *viper.Viper) (*nap.DB, func(), error) {
	v.SetDefault("db.driver", "postgres")

	driver := v.GetString("db.driver")
	dsn := v.GetString("db.dsn")

	for _, replica := range v.GetStringSlice("db.replicas") {
		dsn += ";" + replica
	}

	conn, err := nap.Open(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(conn.Master()); err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}
