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

func authRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(secret))
	r.POST("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestAuth(t *testing.T) {
	r := authRouter(testSecret)

	do := func(authHeader string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header rejected", func(t *testing.T) {
		if w := do(""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		if w := do("Token abc"); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{
			"sub": "inspector",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		if w := do("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "inspector",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		if w := do("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token accepted with subject", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "inspector-7",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w := do("Bearer " + token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body := w.Body.String(); body != `{"subject":"inspector-7"}` {
			t.Errorf("body = %s", body)
		}
	})
}
