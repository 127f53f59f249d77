package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/respicy/backend/internal/models"
	"github.com/respicy/backend/internal/testhelpers"
	"github.com/respicy/backend/internal/types"
)

func TestCreateRecipeDefaults(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice", "alice@example.com")
	svc := NewRecipeService(db)

	recipe, err := svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:       "Plain Toast",
		Description: "Bread, toasted.",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultCookingTime, recipe.CookingTime)
	assert.Equal(t, DefaultServings, recipe.Servings)
	assert.Equal(t, DefaultDifficulty, recipe.Difficulty)
	assert.Equal(t, DefaultCuisine, recipe.Cuisine)
	assert.True(t, recipe.IsPublic)
	assert.Empty(t, recipe.ImageURL)
	assert.Equal(t, owner.ID, recipe.UserID)
}

func TestCreateRecipeValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice", "alice@example.com")
	svc := NewRecipeService(db)

	_, err := svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Description: "no title",
	})
	assert.True(t, IsValidation(err))

	_, err = svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title: "no description",
	})
	assert.True(t, IsValidation(err))

	badTime := -5
	_, err = svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:       "Bad",
		Description: "negative cooking time",
		CookingTime: &badTime,
	})
	assert.True(t, IsValidation(err))
}

func TestCreateRecipeRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice", "alice@example.com")
	svc := NewRecipeService(db)

	cookingTime := 45
	servings := 2
	isPublic := false
	req := &types.CreateRecipeRequest{
		Title:       "Shakshuka",
		Description: "Eggs poached in tomato sauce",
		Ingredients: []models.Ingredient{
			{Name: "eggs", Amount: "4", Unit: "pcs"},
			{Name: "tomatoes", Amount: "400", Unit: "g"},
		},
		Instructions: []models.Step{
			{Step: 1, Text: "Simmer the sauce"},
			{Step: 2, Text: "Poach the eggs"},
		},
		CookingTime: &cookingTime,
		Servings:    &servings,
		Difficulty:  "easy",
		Cuisine:     "middle-eastern",
		IsPublic:    &isPublic,
		ImageURL:    "http://example.com/shakshuka.jpg",
	}

	created, err := svc.CreateRecipe(context.Background(), owner.ID, req)
	require.NoError(t, err)

	got, err := svc.GetRecipe(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, req.Description, got.Description)
	assert.Equal(t, models.IngredientList(req.Ingredients), got.Ingredients)
	assert.Equal(t, models.StepList(req.Instructions), got.Instructions)
	assert.Equal(t, cookingTime, got.CookingTime)
	assert.Equal(t, servings, got.Servings)
	assert.Equal(t, "easy", got.Difficulty)
	assert.Equal(t, "middle-eastern", got.Cuisine)
	assert.False(t, got.IsPublic)
	assert.Equal(t, req.ImageURL, got.ImageURL)
}

func TestGetRecipeNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.GetRecipe(context.Background(), newUUID(t))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListPublicFiltersPrivateRecipes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice", "alice@example.com")
	svc := NewRecipeService(db)

	_, err := svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:       "Public Pie",
		Description: "everyone can see this",
	})
	require.NoError(t, err)

	private := false
	_, err = svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:       "Secret Sauce",
		Description: "owner only",
		IsPublic:    &private,
	})
	require.NoError(t, err)

	public, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Public Pie", public[0].Title)

	mine, err := svc.ListByOwner(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestUpdateRecipePartial(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice", "alice@example.com")
	svc := NewRecipeService(db)

	created, err := svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:       "Original",
		Description: "original description",
		Cuisine:     "italian",
	})
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.UpdateRecipe(context.Background(), created.ID, owner.ID, &types.UpdateRecipeRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, "italian", updated.Cuisine)
	assert.Equal(t, created.CookingTime, updated.CookingTime)
}

func TestUpdateRecipeNotOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice", "alice@example.com")
	other := testhelpers.CreateTestUser(t, db, "Bob", "bob", "bob@example.com")
	svc := NewRecipeService(db)

	created, err := svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:       "Mine",
		Description: "hands off",
	})
	require.NoError(t, err)

	newTitle := "Stolen"
	_, err = svc.UpdateRecipe(context.Background(), created.ID, other.ID, &types.UpdateRecipeRequest{
		Title: &newTitle,
	})
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestDeleteRecipeOwnership(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice", "alice@example.com")
	other := testhelpers.CreateTestUser(t, db, "Bob", "bob", "bob@example.com")
	svc := NewRecipeService(db)

	created, err := svc.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:       "Ephemeral",
		Description: "soon to be gone",
	})
	require.NoError(t, err)

	err = svc.DeleteRecipe(context.Background(), created.ID, other.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	require.NoError(t, svc.DeleteRecipe(context.Background(), created.ID, owner.ID))

	_, err = svc.GetRecipe(context.Background(), created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
