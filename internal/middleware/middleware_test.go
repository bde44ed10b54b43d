package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T) *ginext.Engine {
	t.Helper()
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))

	api := r.Group("/", Auth(testSecret))
	api.GET("/me", func(c *ginext.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, ginext.H{"user_id": actor.UserID, "role": string(actor.Role)})
	})
	api.GET("/admin", RequireRole(domain.RoleAdmin), func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})
	return r
}

func request(t *testing.T, r http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupRouter(t)
	tok, err := IssueToken(testSecret, "u1", domain.RoleSeller, time.Minute)
	require.NoError(t, err)

	w := request(t, r, "/me", tok)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"seller"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuth_MissingToken(t *testing.T) {
	w := request(t, setupRouter(t), "/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	tok, err := IssueToken("other", "u1", domain.RoleBuyer, time.Minute)
	require.NoError(t, err)

	w := request(t, setupRouter(t), "/me", tok)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	tok, err := IssueToken(testSecret, "u1", domain.RoleBuyer, -time.Minute)
	require.NoError(t, err)

	w := request(t, setupRouter(t), "/me", tok)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := setupRouter(t)
	buyer, err := IssueToken(testSecret, "u1", domain.RoleBuyer, time.Minute)
	require.NoError(t, err)
	admin, err := IssueToken(testSecret, "a1", domain.RoleAdmin, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, request(t, r, "/admin", buyer).Code)
	assert.Equal(t, http.StatusNoContent, request(t, r, "/admin", admin).Code)
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	w := request(t, setupRouter(t), "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
