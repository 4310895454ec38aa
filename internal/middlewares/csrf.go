package middlewares

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/security"
)

// CsrfMiddleware implements the double-submit-cookie scheme with an
// origin check on top. Every request gets a csrf_token cookie (minted
// lazily); unsafe methods must additionally echo the cookie value in the
// X-Csrf-Token header and carry an Origin or Referer matching the
// configured public origin. Failures are rejected with 403 before any
// handler runs.
//
// publicOrigin may be empty, in which case the origin is derived from
// the request itself (Host plus TLS state).
func CsrfMiddleware(publicOrigin string, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(security.CsrfCookie); err == nil {
				token = cookie.Value
			}
			if token == "" {
				minted, err := security.NewToken()
				if err != nil {
					logger.Log.Errorw("failed to mint csrf token", "err", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				token = minted
				http.SetCookie(w, security.CsrfCookieFor(token, secureCookies))
			}

			r = r.WithContext(SetCsrfTokenToContext(r.Context(), token))

			if security.IsSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			if !originAllowed(r, publicOrigin) {
				forbid(w, "Cross-origin request rejected")
				return
			}

			header := r.Header.Get(security.CsrfHeader)
			cookie, err := r.Cookie(security.CsrfCookie)
			if err != nil || header == "" ||
				subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(header)) != 1 {
				forbid(w, "Invalid CSRF token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed checks the Origin header first, falling back to Referer.
// A request carrying neither is allowed through: the origin check is a
// best-effort layer and the double-submit token remains the real gate.
func originAllowed(r *http.Request, publicOrigin string) bool {
	expected := publicOrigin
	if expected == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		expected = scheme + "://" + r.Host
	}

	if origin := r.Header.Get("Origin"); origin != "" {
		return origin == expected
	}

	if referer := r.Header.Get("Referer"); referer != "" {
		u, err := url.Parse(referer)
		if err != nil {
			return false
		}
		return u.Scheme+"://"+u.Host == expected
	}

	return true
}

func forbid(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
