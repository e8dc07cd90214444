package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shrijee_plots/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

type stubParser map[string]auth.Principal

func (s stubParser) Parse(token string) (auth.Principal, error) {
	p, ok := s[token]
	if !ok {
		return auth.Principal{}, errors.New("bad token")
	}
	return p, nil
}

var parser = stubParser{
	"admin-token": {UserID: "admin-1", Role: auth.RoleAdmin},
	"user-token":  {UserID: "u1", Role: auth.RoleUser},
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", append(handlers, func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		ctxP, ctxOK := PrincipalFromContext(c.Request.Context())
		if ok != ctxOK || p != ctxP {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, p.UserID)
	})...)
	return r
}

func do(r *gin.Engine, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	cases := []struct {
		name     string
		required bool
		header   string
		code     int
		body     string
	}{
		{name: "required without token", required: true, code: http.StatusUnauthorized},
		{name: "optional without token", required: false, code: http.StatusOK, body: ""},
		{name: "invalid token", required: false, header: "Bearer nope", code: http.StatusUnauthorized},
		{name: "malformed header", required: true, header: "Token user-token", code: http.StatusUnauthorized},
		{name: "optional with other scheme", required: false, header: "Basic dXNlcjpwYXNz", code: http.StatusUnauthorized},
		{name: "optional with empty bearer", required: false, header: "Bearer", code: http.StatusUnauthorized},
		{name: "optional with blank bearer", required: false, header: "Bearer   ", code: http.StatusUnauthorized},
		{name: "valid token", required: true, header: "Bearer user-token", code: http.StatusOK, body: "u1"},
		{name: "scheme case insensitive", required: true, header: "bearer admin-token", code: http.StatusOK, body: "admin-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(newRouter(Authenticate(parser, tc.required)), tc.header)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if tc.code == http.StatusOK && w.Body.String() != tc.body {
				t.Fatalf("expected body %q, got %q", tc.body, w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := newRouter(Authenticate(parser, false), RequireRole(auth.RoleAdmin))

	if w := do(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", w.Code)
	}
	if w := do(r, "Bearer user-token"); w.Code != http.StatusForbidden {
		t.Fatalf("user: expected 403, got %d", w.Code)
	}
	if w := do(r, "Bearer admin-token"); w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", w.Code)
	}
}
