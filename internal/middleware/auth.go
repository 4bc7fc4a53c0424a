package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/tympollack/keep-rocket-league/internal/session"
)

// unexported, collision-proof context key
type steamIDContextKeyType struct{}

var steamIDKey = steamIDContextKeyType{}

// SteamIDFromContext extracts the authenticated steam id from context.
func SteamIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(steamIDKey).(string)
	return id, ok
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// RequireAuth gates a handler behind a valid session. The session
// carries only the account identifier; anything else must be looked up
// from the account store.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := cookie.Value

		sess, err := a.Store.Get(r.Context(), sessionID)
		if err != nil || sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(r.Context(), sessionID)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), steamIDKey, sess.SteamID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
