package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipegenie/core/pkg/models"
)

func newTestShoppingBuilder() *ShoppingListBuilder {
	logger := testLogger()
	return NewShoppingListBuilder(NewPreprocessor(logger), logger)
}

func TestShoppingListFromRecipes(t *testing.T) {
	b := newTestShoppingBuilder()

	recipes := []models.RecipeRecord{
		{Title: "Pancakes", Ingredients: []string{"2 cups flour", "3 eggs", "1 cup milk"}},
		{Title: "Omelette", Ingredients: []string{"3 eggs", "cheese"}},
	}
	result := b.Build(recipes, []string{"flour"}, false)

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, []string{"cheese", "eggs", "milk"}, result.ShoppingList)
	assert.Equal(t, 2, result.RecipeCount)
	assert.False(t, result.AIEnhanced)

	assert.Contains(t, result.CategorizedList["Proteins"], "eggs")
	assert.Contains(t, result.CategorizedList["Dairy"], "milk")
	assert.Contains(t, result.CategorizedList["Dairy"], "cheese")
}

func TestShoppingListFromPantryOnly(t *testing.T) {
	b := newTestShoppingBuilder()

	result := b.Build(nil, []string{"2 cups flour", "sugar"}, true)

	require.True(t, result.Success)
	assert.Equal(t, []string{"flour", "sugar"}, result.ShoppingList)
	assert.Equal(t, 0, result.RecipeCount)
	assert.True(t, result.AIEnhanced)
}

func TestShoppingListPrefersNormalizedIngredients(t *testing.T) {
	b := newTestShoppingBuilder()

	recipes := []models.RecipeRecord{{
		Title:                 "Curry",
		Ingredients:           []string{"this raw text is ignored"},
		NormalizedIngredients: []string{"rice", "curry paste"},
	}}
	result := b.Build(recipes, nil, false)

	require.True(t, result.Success)
	assert.Equal(t, []string{"curry paste", "rice"}, result.ShoppingList)
}

func TestShoppingListEmpty(t *testing.T) {
	b := newTestShoppingBuilder()

	t.Run("no input at all", func(t *testing.T) {
		result := b.Build(nil, nil, false)
		assert.False(t, result.Success)
		assert.Equal(t, "no ingredients to build a shopping list from", result.Error)
		assert.NotNil(t, result.ShoppingList)
		assert.Empty(t, result.ShoppingList)
	})

	t.Run("pantry covers everything", func(t *testing.T) {
		recipes := []models.RecipeRecord{{Title: "Toast", Ingredients: []string{"bread"}}}
		result := b.Build(recipes, []string{"bread"}, false)
		assert.False(t, result.Success)
		assert.Equal(t, 1, result.RecipeCount)
	})
}
