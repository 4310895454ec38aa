package middlewares

import (
	"context"

	"github.com/sbilibin2017/dino-pet-server/internal/models"
)

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	sessionUserKey = contextKey{"session_user"}
	csrfTokenKey   = contextKey{"csrf_token"}
)

// SetSessionUserToContext stores the resolved session-user pair in the context.
func SetSessionUserToContext(ctx context.Context, su *models.SessionUser) context.Context {
	return context.WithValue(ctx, sessionUserKey, su)
}

// GetSessionUserFromContext retrieves the authenticated session-user pair.
// Returns nil for unauthenticated requests.
func GetSessionUserFromContext(ctx context.Context) *models.SessionUser {
	su, _ := ctx.Value(sessionUserKey).(*models.SessionUser)
	return su
}

// SetCsrfTokenToContext stores the per-browser CSRF token in the context.
func SetCsrfTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfTokenKey, token)
}

// GetCsrfTokenFromContext retrieves the CSRF token minted for this browser.
func GetCsrfTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(csrfTokenKey).(string)
	return token
}
