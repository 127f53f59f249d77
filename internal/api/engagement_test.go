package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRatingEndpoint(t *testing.T) {
	ts := newTestServer(t)
	_, ownerToken := ts.register(t, "Alice", "alice", "alice@example.com")
	_, raterToken := ts.register(t, "Bob", "bob", "bob@example.com")

	recipeID := createRecipe(t, ts, ownerToken, gin.H{
		"title":       "Ratable",
		"description": "rate me",
	})

	path := fmt.Sprintf("/api/recipe-records/%s/rate", recipeID)

	w := ts.do(t, http.MethodPost, path, raterToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["rated"])
	assert.Equal(t, float64(1), body["rated_count"])

	// Second toggle removes the rating.
	w = ts.do(t, http.MethodPost, path, raterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["rated"])
	assert.Equal(t, float64(0), body["rated_count"])
}

func TestEngagementRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "Alice", "alice", "alice@example.com")
	recipeID := createRecipe(t, ts, token, gin.H{
		"title":       "Guarded",
		"description": "token required",
	})

	w := ts.do(t, http.MethodPost, fmt.Sprintf("/api/recipe-records/%s/favorite", recipeID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleUnknownRecipeEndpoint(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "Alice", "alice", "alice@example.com")

	w := ts.do(t, http.MethodPost, fmt.Sprintf("/api/recipe-records/%s/rate", uuid.NewString()), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Full journey: A shares a recipe, B favorites it, A removes the recipe.
func TestEngagementLifecycle(t *testing.T) {
	ts := newTestServer(t)
	_, aToken := ts.register(t, "Alice", "alice", "alice@example.com")
	bID, bToken := ts.register(t, "Bob", "bob", "bob@example.com")

	recipeID := createRecipe(t, ts, aToken, gin.H{
		"title":       "Shared Curry",
		"description": "a public recipe",
	})

	w := ts.do(t, http.MethodPost, fmt.Sprintf("/api/recipe-records/%s/favorite", recipeID), bToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decodeBody(t, w)["favorited"])

	// Favoriting never implies rating.
	w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/recipe-records/%s/user/%s/status", recipeID, bID), bToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeBody(t, w)
	assert.Equal(t, false, status["rated"])
	assert.Equal(t, true, status["favorited"])
	assert.Equal(t, float64(0), status["rated_count"])

	// B's profile lists the favorite.
	w = ts.do(t, http.MethodGet, "/api/users/"+bID.String(), bToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decodeBody(t, w)
	favorites, ok := profile["favorites"].([]interface{})
	require.True(t, ok)
	require.Len(t, favorites, 1)
	assert.Equal(t, recipeID.String(), favorites[0])

	// The owner deletes the recipe; engagement state goes with it.
	w = ts.do(t, http.MethodDelete, "/api/recipes/"+recipeID.String(), aToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/recipes/"+recipeID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/recipe-records/%s/user/%s/status", recipeID, bID), bToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
