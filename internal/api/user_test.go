package api_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvatarStore struct{}

func (stubAvatarStore) Store(_ context.Context, userID uuid.UUID, _ []byte, _ string) (string, error) {
	return fmt.Sprintf("https://cdn.example.com/avatars/%s.png", userID), nil
}

func TestGetProfileEndpoint(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.register(t, "Alice", "alice", "alice@example.com")

	recipeID := createRecipe(t, ts, token, gin.H{
		"title":       "Signature Dish",
		"description": "alice's best",
	})

	w := ts.do(t, http.MethodGet, "/api/users/"+userID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password_hash")

	recipes, ok := body["recipes"].([]interface{})
	require.True(t, ok)
	require.Len(t, recipes, 1)
	assert.Equal(t, recipeID.String(), recipes[0])

	// Empty lists serialize as [], never null.
	assert.Equal(t, []interface{}{}, body["meal_plans"])
	assert.Equal(t, []interface{}{}, body["rated"])
	assert.Equal(t, []interface{}{}, body["favorites"])
}

func TestGetProfileUnknownUser(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "Alice", "alice", "alice@example.com")

	w := ts.do(t, http.MethodGet, "/api/users/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.register(t, "Alice", "alice", "alice@example.com")

	w := ts.do(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"bio": "I cook things.",
		"avatar": gin.H{
			"kind":  "url",
			"value": "https://example.com/me.png",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, userID.String(), body["id"])
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "I cook things.", body["bio"])
	assert.Equal(t, "https://example.com/me.png", body["avatar_url"])
}

func TestUpdateProfileBadAvatarKind(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "Alice", "alice", "alice@example.com")

	w := ts.do(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"avatar": gin.H{"kind": "gravatar"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadAvatarEndpoint(t *testing.T) {
	ts := newTestServerWithAvatars(t, stubAvatarStore{})
	userID, token := ts.register(t, "Alice", "alice", "alice@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	wantURL := fmt.Sprintf("https://cdn.example.com/avatars/%s.png", userID)
	assert.Equal(t, wantURL, decodeBody(t, w)["avatar_url"])

	// The stored URL shows up on the profile afterwards.
	got := ts.do(t, http.MethodGet, "/api/users/"+userID.String(), token, nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, wantURL, decodeBody(t, got)["avatar_url"])
}

func TestUploadAvatarMissingFile(t *testing.T) {
	ts := newTestServerWithAvatars(t, stubAvatarStore{})
	_, token := ts.register(t, "Alice", "alice", "alice@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
