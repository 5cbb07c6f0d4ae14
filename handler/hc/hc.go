package hc

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tsenart/nap"
)

func Handler(version string, db *nap.DB) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		dbState := "ok"
		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			dbState = "unreachable"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"version": version,
			"uptime":  time.Since(t).String(),
			"db":      dbState,
		})
	}

	return http.HandlerFunc(fn)
}
