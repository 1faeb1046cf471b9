package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "middleware-secret"
	testAdmin  = "admin@viasacra.example"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminAuth(testSecret, testAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextAdminEmail))
	})
	return r
}

func doAdminRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"email": "Admin@ViaSacra.example", "exp": time.Now().Add(time.Hour).Unix()})

	w := doAdminRequest(newAdminRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Admin@ViaSacra.example", w.Body.String())
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	w := doAdminRequest(newAdminRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is required")
}

func TestAdminAuth_MalformedHeader(t *testing.T) {
	w := doAdminRequest(newAdminRouter(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"email": testAdmin, "exp": time.Now().Add(time.Hour).Unix()})
	w := doAdminRequest(newAdminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_Expired(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"email": testAdmin, "exp": time.Now().Add(-time.Minute).Unix()})
	w := doAdminRequest(newAdminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_OtherIdentityForbidden(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"email": "someone@example.com", "exp": time.Now().Add(time.Hour).Unix()})
	w := doAdminRequest(newAdminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAuth_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { AdminAuth("", testAdmin) })
}
