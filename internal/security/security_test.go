package security_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/sbilibin2017/dino-pet-server/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	first, err := security.NewToken()
	require.NoError(t, err)
	second, err := security.NewToken()
	require.NoError(t, err)

	assert.Len(t, first, 64) // 32 random bytes, hex encoded
	assert.NotEqual(t, first, second)
}

func TestSessionCookieFor(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	c := security.SessionCookieFor("tok", expires, true)

	assert.Equal(t, security.SessionCookie, c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, expires, c.Expires)
}

func TestExpiredSessionCookie(t *testing.T) {
	c := security.ExpiredSessionCookie(false)

	assert.Equal(t, security.SessionCookie, c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.True(t, c.HttpOnly)
}

func TestCsrfCookieFor(t *testing.T) {
	c := security.CsrfCookieFor("tok", false)

	assert.Equal(t, security.CsrfCookie, c.Name)
	assert.False(t, c.HttpOnly, "CSRF cookie must stay readable by client script")
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestIsSafeMethod(t *testing.T) {
	assert.True(t, security.IsSafeMethod(http.MethodGet))
	assert.True(t, security.IsSafeMethod(http.MethodHead))
	assert.True(t, security.IsSafeMethod(http.MethodOptions))
	assert.False(t, security.IsSafeMethod(http.MethodPost))
	assert.False(t, security.IsSafeMethod(http.MethodPut))
	assert.False(t, security.IsSafeMethod(http.MethodDelete))
}
