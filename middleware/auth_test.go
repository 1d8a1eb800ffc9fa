package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-server/auth"
	"admin-server/entities"
	"admin-server/repositories"
)

const testSecret = "middleware-test-secret"

// singleUserRepo serves exactly one user by id; everything else is unused by
// the middleware.
type singleUserRepo struct {
	user *entities.User
}

func (r *singleUserRepo) GetByID(id string) (*entities.User, error) {
	if r.user != nil && r.user.ID == id {
		clone := *r.user
		return &clone, nil
	}
	return nil, errors.New("record not found")
}

func (r *singleUserRepo) Create(*entities.User) error { return errors.New("not implemented") }
func (r *singleUserRepo) GetByEmail(string) (*entities.User, error) {
	return nil, errors.New("not implemented")
}
func (r *singleUserRepo) List(repositories.UserQuery) ([]entities.User, int64, error) {
	return nil, 0, errors.New("not implemented")
}
func (r *singleUserRepo) Update(*entities.User) error { return errors.New("not implemented") }
func (r *singleUserRepo) Delete(string) error         { return errors.New("not implemented") }

func testUser(role auth.Role) *entities.User {
	return &entities.User{
		ID:       "user-1",
		Email:    "user@test.com",
		Name:     "User",
		Role:     role,
		IsActive: true,
	}
}

func protectedRouter(repo repositories.UserRepository, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Authenticate(repo, testSecret)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": CurrentUser(c).ID})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	user := testUser(auth.RoleViewer)
	repo := &singleUserRepo{user: user}

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(protectedRouter(repo), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "No token provided")
	})

	t.Run("malformed token", func(t *testing.T) {
		w := doRequest(protectedRouter(repo), "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := auth.GenerateToken(user.ID, testSecret, -time.Minute)
		require.NoError(t, err)
		w := doRequest(protectedRouter(repo), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("user no longer exists", func(t *testing.T) {
		token, err := auth.GenerateToken("deleted-user", testSecret, time.Hour)
		require.NoError(t, err)
		w := doRequest(protectedRouter(repo), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no longer exists")
	})

	t.Run("deactivated user", func(t *testing.T) {
		inactive := testUser(auth.RoleViewer)
		inactive.IsActive = false
		token, err := auth.GenerateToken(inactive.ID, testSecret, time.Hour)
		require.NoError(t, err)
		w := doRequest(protectedRouter(&singleUserRepo{user: inactive}), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "deactivated")
	})

	t.Run("stale password", func(t *testing.T) {
		stale := testUser(auth.RoleViewer)
		token, err := auth.GenerateToken(stale.ID, testSecret, time.Hour)
		require.NoError(t, err)

		changed := time.Now().Add(time.Minute)
		stale.PasswordChangedAt = &changed
		w := doRequest(protectedRouter(&singleUserRepo{user: stale}), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "recently changed password")
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
		require.NoError(t, err)
		w := doRequest(protectedRouter(repo), token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.ID)
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("viewer blocked from create", func(t *testing.T) {
		user := testUser(auth.RoleViewer)
		repo := &singleUserRepo{user: user}
		token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(protectedRouter(repo, Authorize(auth.PermCreate)), token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("editor allowed to create", func(t *testing.T) {
		user := testUser(auth.RoleEditor)
		repo := &singleUserRepo{user: user}
		token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(protectedRouter(repo, Authorize(auth.PermCreate)), token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("any listed permission passes", func(t *testing.T) {
		user := testUser(auth.RoleViewer)
		repo := &singleUserRepo{user: user}
		token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(protectedRouter(repo, Authorize(auth.PermDelete, auth.PermRead)), token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("editor blocked from owner route", func(t *testing.T) {
		user := testUser(auth.RoleEditor)
		repo := &singleUserRepo{user: user}
		token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(protectedRouter(repo, RequireRole(auth.RoleOwner)), token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Owner")
	})

	t.Run("admin passes owner route by rank", func(t *testing.T) {
		user := testUser(auth.RoleAppAdmin)
		repo := &singleUserRepo{user: user}
		token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(protectedRouter(repo, RequireRole(auth.RoleOwner)), token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	user := testUser(auth.RoleAppAdmin)
	repo := &singleUserRepo{user: user}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", OptionalAuthenticate(repo, testSecret), func(c *gin.Context) {
		if u := CurrentUser(c); u != nil {
			c.JSON(http.StatusOK, gin.H{"user_id": u.ID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": nil})
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("bad token still passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.ID)
	})
}
