package handlers

import (
	"bytes"
	"net/http/httptest"

	"shrijee_plots/internal/adapter/http/middleware"
	"shrijee_plots/internal/adapter/http/validation"
	"shrijee_plots/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

var (
	adminPrincipal      = &auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}
	buyerPrincipal      = &auth.Principal{UserID: "u1", Role: auth.RoleUser}
	otherBuyerPrincipal = &auth.Principal{UserID: "u2", Role: auth.RoleUser}
)

// newTestRouter returns a router whose requests carry p as the caller.
func newTestRouter(p *auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Register()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if p != nil {
			middleware.SetPrincipal(c, *p)
		}
		c.Next()
	})
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withHeader(r *gin.Engine, method, path, body, key, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(key, value)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
