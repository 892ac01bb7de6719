package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/utils"
)

func setupAuthTest(t *testing.T) {
	t.Helper()

	viper.Set("JWT_SECRET", "test-secret")

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			token_version INTEGER NOT NULL DEFAULT 0
		)
	`)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO users (email, token_version) VALUES ('editor@example.com', 0)")
	require.NoError(t, err)

	config.DB = db
}

func invokeJWT(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/hero", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := JWTMiddleware(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, nextCalled
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["error"].(string)
	return code
}

func TestJWTMiddlewareMissingCookie(t *testing.T) {
	setupAuthTest(t)

	rec, nextCalled := invokeJWT(t, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "AUTH_TOKEN_MISSING", errorCode(t, rec))
}

func TestJWTMiddlewareMalformedToken(t *testing.T) {
	setupAuthTest(t)

	rec, nextCalled := invokeJWT(t, &http.Cookie{Name: AuthCookieName, Value: "not-a-jwt"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, "AUTH_TOKEN_INVALID", errorCode(t, rec))
}

func TestJWTMiddlewareBadSignature(t *testing.T) {
	setupAuthTest(t)

	viper.Set("JWT_SECRET", "other-secret")
	token, err := utils.GenerateAccessToken(1, "editor@example.com", 0)
	require.NoError(t, err)
	viper.Set("JWT_SECRET", "test-secret")

	rec, nextCalled := invokeJWT(t, &http.Cookie{Name: AuthCookieName, Value: token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	setupAuthTest(t)

	token, err := utils.GenerateAccessToken(1, "editor@example.com", 0)
	require.NoError(t, err)

	rec, nextCalled := invokeJWT(t, &http.Cookie{Name: AuthCookieName, Value: token})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestJWTMiddlewareRevokedSession(t *testing.T) {
	setupAuthTest(t)

	// Token minted before a logout bumped token_version.
	token, err := utils.GenerateAccessToken(1, "editor@example.com", 0)
	require.NoError(t, err)
	_, err = config.DB.Exec("UPDATE users SET token_version = 1 WHERE id = 1")
	require.NoError(t, err)

	rec, nextCalled := invokeJWT(t, &http.Cookie{Name: AuthCookieName, Value: token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, "AUTH_SESSION_REVOKED", errorCode(t, rec))
}
