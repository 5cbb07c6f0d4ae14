package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oxtoacart/bpool"
	"github.com/pandodao/safe-ledger/core"
)

var buffers = bpool.NewBufferPool(64)

func (s *Server) renderJSON(w http.ResponseWriter, status int, v any) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderValidation(w http.ResponseWriter, msg string) {
	s.renderJSON(w, http.StatusBadRequest, map[string]any{"error": msg})
}

// renderErr maps core sentinels to status codes; anything unrecognized is
// logged and reported as an opaque internal error.
func (s *Server) renderErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrInvalidAmount), errors.Is(err, core.ErrInvalidKind):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, core.ErrTokenInvalid), errors.Is(err, core.ErrTokenExpired), errors.Is(err, core.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, core.ErrAccountNotFound), errors.Is(err, core.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, core.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		msg = "internal error"
	}

	s.renderJSON(w, status, map[string]any{"error": msg})
}
