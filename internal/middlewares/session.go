package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/security"
)

// SessionResolver defines the minimal interface needed by the middleware.
type SessionResolver interface {
	ResolveSession(ctx context.Context, id models.SessionID) (*models.SessionUser, error)
}

// SessionMiddleware reads the session cookie, resolves it and attaches the
// session-user pair to the request context. Requests without a valid session
// pass through unauthenticated; a stale cookie is cleared on the way.
func SessionMiddleware(resolver SessionResolver, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(security.SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			su, err := resolver.ResolveSession(r.Context(), models.SessionID(cookie.Value))
			if err != nil {
				// Storage trouble is fatal to the request. Answering 401
				// here would tell clients to discard a valid cookie.
				logger.Log.Errorw("session resolution failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				return
			}

			if su == nil {
				http.SetCookie(w, security.ExpiredSessionCookie(secureCookies))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetSessionUserToContext(r.Context(), su)))
		})
	}
}
