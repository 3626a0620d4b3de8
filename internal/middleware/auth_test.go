package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{
			"userId":   c.GetUint("userId"),
			"userType": c.GetString("userType"),
		})
	})
	r.GET("/user-only", AuthMiddleware(), RequireUser(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/owner-only", AuthMiddleware(), RequireTurfOwner(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	r := setupRouter()

	user := &models.User{Model: gorm.Model{ID: 9}, Email: "p@example.com"}
	token, err := utils.GenerateUserToken(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":9`)
	assert.Contains(t, w.Body.String(), `"userType":"user"`)
}

func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	r := setupRouter()

	user := &models.User{Model: gorm.Model{ID: 3}, Email: "p@example.com"}
	token, err := utils.GenerateUserToken(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
}

func TestAccountTypeGuards(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	r := setupRouter()

	owner := &models.TurfOwner{Model: gorm.Model{ID: 5}, Email: "o@example.com"}
	ownerToken, err := utils.GenerateTurfOwnerToken(owner)
	require.NoError(t, err)

	// Owner token on a user-only route
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, 403, w.Code)

	// Owner token on an owner-only route
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/owner-only", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}
