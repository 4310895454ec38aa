// Package security holds the cookie and token conventions shared by the session
// middleware, the CSRF guard and the auth handlers.
package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

// Cookie and header names mirrored by the browser client.
const (
	SessionCookie = "session_id"
	CsrfCookie    = "csrf_token"
	CsrfHeader    = "X-Csrf-Token"
)

const tokenLength = 32 // bytes of entropy per token

// NewToken returns a cryptographically random, hex-encoded opaque token
// (256 bits of entropy). Used for both session IDs and CSRF tokens.
func NewToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SessionCookieFor builds the http-only session cookie set at login/registration.
func SessionCookieFor(token string, expires time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that clears the session cookie.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CsrfCookieFor builds the CSRF cookie. It is deliberately not http-only so
// client script can read it and echo the value back in the CSRF header.
func CsrfCookieFor(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CsrfCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// IsSafeMethod reports whether the HTTP method is exempt from CSRF checks.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
