package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"showroom-backend/config"
	"showroom-backend/models"
	"showroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", Login)
	r.GET("/auth/me", utils.AuthMiddleware(), Me)
	return r
}

func seedUser(t *testing.T, username, password string, active bool) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: password,
		Name:     "Test User",
		Role:     "manager",
		Active:   active,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	if !active {
		// The column default is true, so an inactive fixture needs an
		// explicit update after create.
		require.NoError(t, config.DB.Model(&user).Update("active", false).Error)
	}
	return user
}

func newAuthedRequest(t *testing.T, token string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req, httptest.NewRecorder()
}

func TestLogin(t *testing.T) {
	setupControllerTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	seedUser(t, "ravi", "s3cret", true)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"username": "ravi", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "ravi", resp.User.Username)
	require.Equal(t, "manager", resp.User.Role)

	// Wrong password and unknown user respond identically.
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"username": "ravi", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"username": "nobody", "password": "s3cret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "ravi"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_DisabledAccount(t *testing.T) {
	setupControllerTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	seedUser(t, "gone", "s3cret", false)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"username": "gone", "password": "s3cret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_RequiresToken(t *testing.T) {
	setupControllerTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	user := seedUser(t, "ravi", "s3cret", true)

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateToken(user.ID.String(), user.Username, user.Role)
	require.NoError(t, err)

	req, w2 := newAuthedRequest(t, token)
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

	var resp struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	require.Equal(t, "ravi", resp.User.Username)

	// A token signed with a different secret is rejected.
	t.Setenv("JWT_SECRET", "other-secret")
	req, w3 := newAuthedRequest(t, token)
	r.ServeHTTP(w3, req)
	require.Equal(t, http.StatusUnauthorized, w3.Code)
}
