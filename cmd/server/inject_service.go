package main

import (
	"fmt"

	"github.com/google/wire"
	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/service/ledger"
	"github.com/pandodao/safe-ledger/service/token"
	"github.com/pandodao/safe-ledger/service/user"
	"github.com/spf13/viper"
)

var serviceSet = wire.NewSet(
	provideTokenService,
	provideUserConfig,
	ledger.New,
	user.New,
)

func provideTokenService(v *viper.Viper) (core.TokenService, error) {
	secret := v.GetString("auth.secret")
	if secret == "" {
		return nil, fmt.Errorf("auth.secret is required")
	}

	return token.New([]byte(secret)), nil
}

func provideUserConfig(v *viper.Viper) user.Config {
	v.SetDefault("auth.token_ttl", "1h")

	return user.Config{
		TokenTTL: v.GetDuration("auth.token_ttl"),
	}
}
