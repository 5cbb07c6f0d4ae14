package main

import (
	"github.com/google/wire"
	"github.com/pandodao/safe-ledger/worker/auditor"
)

var workerSet = wire.NewSet(
	auditor.New,
)
