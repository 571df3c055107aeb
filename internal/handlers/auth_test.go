package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-server/internal/middleware"
	"clinic-server/internal/models"
)

func TestNeedsSetupLifecycle(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/auth/needs-setup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["needsSetup"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/setup", gin.H{
		"username": "admin",
		"password": "sup3r-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["id"])

	w = doJSON(t, router, http.MethodGet, "/api/auth/needs-setup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["needsSetup"])
}

func TestSetupSucceedsExactlyOnce(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/setup", gin.H{
		"username": "admin",
		"password": "sup3r-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Second attempt fails regardless of payload.
	w = doJSON(t, router, http.MethodPost, "/api/auth/setup", gin.H{
		"username": "another",
		"password": "different-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetupRequiresFields(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/setup", gin.H{"username": "admin"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["details"], "Password")
}

func TestLoginEstablishesSession(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/auth/user", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["isAuthenticated"])
	assert.NotEmpty(t, body["id"])
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/setup", gin.H{
		"username": "admin",
		"password": "sup3r-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, middleware.SessionCookieName, cookie.Name, "no session cookie on failed login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "ghost",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserWithoutSession(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/auth/user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutDestroysSession(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	// The cookie still carries a valid signature, but the server-side
	// session row is gone.
	w = doJSON(t, router, http.MethodGet, "/api/auth/user", nil, session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutIsIdempotent(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	session := loginAsAdmin(t, router)
	for i := 0; i < 2; i++ {
		w = doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, session)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestTamperedSessionCookieRejected(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)

	tampered := *session
	tampered.Value = session.Value + "x"
	w := doJSON(t, router, http.MethodGet, "/api/auth/user", nil, &tampered)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredSessionRowRejected(t *testing.T) {
	router, db := newTestServer(t)
	session := loginAsAdmin(t, router)

	// Force the server-side row past its absolute expiry; the cookie
	// alone must not keep the session alive.
	require.NoError(t, db.Model(&models.Session{}).
		Where("1 = 1").
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	w := doJSON(t, router, http.MethodGet, "/api/auth/user", nil, session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRedirect(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/logout", nil, session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = doJSON(t, router, http.MethodGet, "/api/auth/user", nil, session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
