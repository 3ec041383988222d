package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/pkg/auth"
)

func newTestSessionService() *auth.SessionService {
	return auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret-key",
		TokenExpiry: time.Hour,
		Issuer:      "studentrecords.test",
	})
}

func issueTestToken(t *testing.T, svc *auth.SessionService, role models.Role) string {
	t.Helper()
	token, err := svc.IssueToken(&models.User{ID: 7, Username: "tester", Role: role})
	require.NoError(t, err)
	return token
}

func newGuardedRouter(svc *auth.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(svc)

	router := gin.New()
	protected := router.Group("/api/students")
	protected.Use(m.SessionAuth())
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": string(CallerRole(c))})
	})

	admin := protected.Group("")
	admin.Use(m.AdminRequired())
	admin.DELETE("/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	return router
}

func doRequest(router *gin.Engine, method, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSessionAuthRejectsMissingCookie(t *testing.T) {
	router := newGuardedRouter(newTestSessionService())

	rec := doRequest(router, http.MethodGet, "/api/students", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestSessionAuthRejectsTamperedCookie(t *testing.T) {
	router := newGuardedRouter(newTestSessionService())

	rec := doRequest(router, http.MethodGet, "/api/students", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthAcceptsValidCookie(t *testing.T) {
	svc := newTestSessionService()
	router := newGuardedRouter(svc)

	token := issueTestToken(t, svc, models.RoleStaff)
	rec := doRequest(router, http.MethodGet, "/api/students", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":"staff"}`, rec.Body.String())
}

func TestAdminRequiredRejectsStaff(t *testing.T) {
	svc := newTestSessionService()
	router := newGuardedRouter(svc)

	token := issueTestToken(t, svc, models.RoleStaff)
	rec := doRequest(router, http.MethodDelete, "/api/students/1", token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden: Admin access required"}`, rec.Body.String())
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	svc := newTestSessionService()
	router := newGuardedRouter(svc)

	token := issueTestToken(t, svc, models.RoleAdmin)
	rec := doRequest(router, http.MethodDelete, "/api/students/1", token)

	assert.Equal(t, http.StatusOK, rec.Code)
}
