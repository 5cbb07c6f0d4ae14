package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/pandodao/safe-ledger/core"
)

type ctxKey int

const userIDKey ctxKey = iota

// authenticate verifies the bearer token and attaches the user id to the
// request context. Missing, malformed and expired tokens all short-circuit
// with 403 before the handler runs.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			s.renderErr(w, core.ErrTokenInvalid)
			return
		}

		userID, err := s.sessions.Verify(token)
		if err != nil {
			s.renderErr(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}
