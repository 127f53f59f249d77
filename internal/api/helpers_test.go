package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/respicy/backend/internal/api"
	"github.com/respicy/backend/internal/middleware"
	"github.com/respicy/backend/internal/router"
	"github.com/respicy/backend/internal/service"
	"github.com/respicy/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *service.AuthService
}

// newTestServer wires the full route tree against an in-memory database.
// Redis and the avatar store are left out, matching a deployment without them.
func newTestServer(t *testing.T) *testServer {
	return newTestServerWithAvatars(t, nil)
}

func newTestServerWithAvatars(t *testing.T, avatars service.AvatarStore) *testServer {
	t.Helper()

	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db, nil, avatars)
	recipeService := service.NewRecipeService(db)
	mealPlanService := service.NewMealPlanService(db)
	engagementService := service.NewEngagementService(db, nil)
	limiter := middleware.NewLoginRateLimiter(nil)

	r := router.SetupRouter(
		api.NewAuthHandler(authService, limiter),
		api.NewUserHandler(profileService, authService),
		api.NewRecipeHandler(recipeService, authService),
		api.NewMealPlanHandler(mealPlanService, authService),
		api.NewEngagementHandler(engagementService, authService),
		api.NewStatsHandler(profileService, recipeService, authService),
		nil,
	)

	return &testServer{db: db, router: r, auth: authService}
}

// do performs a JSON request against the test router. An empty token sends
// no Authorization header.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the HTTP API and returns its id and token.
func (ts *testServer) register(t *testing.T, name, username, email string) (uuid.UUID, string) {
	t.Helper()

	w := ts.do(t, http.MethodPost, "/api/users/register", "", gin.H{
		"name":     name,
		"username": username,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID    uuid.UUID `json:"id"`
		Token string    `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEqual(t, uuid.Nil, resp.ID)
	require.NotEmpty(t, resp.Token)
	return resp.ID, resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
