package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func backendAuthConfig() AuthConfig {
	return AuthConfig{
		AllowedClientTypes: []string{ClientWeb, ClientIOS, ClientAndroid},
		TrustInternal:      true,
	}
}

func webAuthConfig() AuthConfig {
	return AuthConfig{
		AllowedClientTypes: []string{ClientWeb},
	}
}

// newAuthRouter builds a router shaped like the real services: /status open,
// everything else behind Auth.
func newAuthRouter(cfg AuthConfig) *gin.Engine {
	router := gin.New()
	router.GET("/status", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	guarded := router.Group("/")
	guarded.Use(Auth(cfg, zap.NewNop()))
	guarded.GET("/books/1", func(c *gin.Context) {
		_, exists := c.Get(ClaimsContextKey)
		c.JSON(200, gin.H{"claims_present": exists})
	})
	return router
}

func validToken(t *testing.T, sub string) string {
	t.Helper()
	tok, err := token.Sign("test-secret", sub, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return tok
}

func doRequest(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/books/1", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body.Message
}

func TestAuth_MissingClientType(t *testing.T) {
	router := newAuthRouter(backendAuthConfig())

	w := doRequest(router, nil)

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := messageOf(t, w); got != "Missing X-Client-Type header" {
		t.Errorf("message = %q", got)
	}
}

func TestAuth_InvalidClientType(t *testing.T) {
	router := newAuthRouter(webAuthConfig())

	w := doRequest(router, map[string]string{"X-Client-Type": "iOS"})

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := messageOf(t, w); got != "Invalid X-Client-Type. Must be one of [Web]" {
		t.Errorf("message = %q", got)
	}
}

func TestAuth_AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name string
		auth string
	}{
		{"missing", ""},
		{"no bearer prefix", "Token abc.def.ghi"},
		{"lowercase bearer", "bearer abc.def.ghi"},
		{"no space after bearer", "Bearerabc.def.ghi"},
	}

	router := newAuthRouter(backendAuthConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{"X-Client-Type": ClientWeb}
			if tt.auth != "" {
				headers["Authorization"] = tt.auth
			}

			w := doRequest(router, headers)

			if w.Code != 401 {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			if got := messageOf(t, w); got != "Missing or invalid Authorization header" {
				t.Errorf("message = %q", got)
			}
		})
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	router := newAuthRouter(backendAuthConfig())

	w := doRequest(router, map[string]string{
		"X-Client-Type": ClientWeb,
		"Authorization": "Bearer not-a-jwt",
	})

	if w.Code != 401 {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := messageOf(t, w); got != "Invalid token format" {
		t.Errorf("message = %q", got)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tok, err := token.Sign("test-secret", "starlord", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	router := newAuthRouter(backendAuthConfig())

	w := doRequest(router, map[string]string{
		"X-Client-Type": ClientWeb,
		"Authorization": "Bearer " + tok,
	})

	if w.Code != 401 {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := messageOf(t, w); got != "Token has expired" {
		t.Errorf("message = %q", got)
	}
}

func TestAuth_InvalidSubject(t *testing.T) {
	router := newAuthRouter(backendAuthConfig())

	w := doRequest(router, map[string]string{
		"X-Client-Type": ClientWeb,
		"Authorization": "Bearer " + validToken(t, "loki"),
	})

	if w.Code != 401 {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := messageOf(t, w); got != "Invalid subject in token" {
		t.Errorf("message = %q", got)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	router := newAuthRouter(backendAuthConfig())

	w := doRequest(router, map[string]string{
		"X-Client-Type": ClientAndroid,
		"Authorization": "Bearer " + validToken(t, "drax"),
	})

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body struct {
		ClaimsPresent bool `json:"claims_present"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !body.ClaimsPresent {
		t.Error("claims were not attached to the request context")
	}
}

func TestAuth_InternalTrust(t *testing.T) {
	// A backend accepts Internal gateway traffic without a token.
	router := newAuthRouter(backendAuthConfig())

	w := doRequest(router, map[string]string{"X-Client-Type": ClientInternal})

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestAuth_InternalRejectedAtEdge(t *testing.T) {
	// Gateways do not trust Internal; only backends do.
	router := newAuthRouter(webAuthConfig())

	w := doRequest(router, map[string]string{"X-Client-Type": ClientInternal})

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAuth_StatusExempt(t *testing.T) {
	router := newAuthRouter(webAuthConfig())

	// No headers at all, plus a malformed Authorization for good measure.
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Authorization", "garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
