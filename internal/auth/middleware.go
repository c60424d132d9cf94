package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type contextKey struct{}

var userIDKey contextKey

// UserID returns the authenticated user id stored by Middleware, if any.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Middleware returns a handler wrapper that requires a valid bearer token.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			log.Debug().Msg("no token received")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		userID, err := s.app.VerifyToken(token)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}
