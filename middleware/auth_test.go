// File: /middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	r.GET("/open", OptionalAuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != `{"user_id":"user-1"}` {
		t.Errorf("body = %s", body)
	}
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	r := protectedRouter()

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Token abc",
		"wrong secret":    "Bearer " + signToken(t, "other-secret", "user-1", time.Hour),
		"expired":         "Bearer " + signToken(t, testSecret, "user-1", -time.Hour),
		"malformed token": "Bearer not.a.jwt",
	}

	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want %d", name, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	// Anonymous request passes through with empty user_id
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("anonymous: status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != `{"user_id":""}` {
		t.Errorf("anonymous: body = %s", body)
	}

	// Valid token resolves the user
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-2", time.Hour))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if body := w.Body.String(); body != `{"user_id":"user-2"}` {
		t.Errorf("authenticated: body = %s", body)
	}

	// Invalid token is treated as anonymous, not rejected
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("invalid token: status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != `{"user_id":""}` {
		t.Errorf("invalid token: body = %s", body)
	}
}
