package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipegenie/core/pkg/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCleanText(t *testing.T) {
	p := NewPreprocessor(testLogger())

	tests := []struct {
		name, in, want string
	}{
		{"lowercases", "Fresh Basil", "fresh basil"},
		{"strips accents", "jalapeño crème", "jalapeno creme"},
		{"drops punctuation but keeps hyphens", "salt, pepper & gluten-free flour!", "salt pepper gluten-free flour"},
		{"collapses whitespace", "  too   many\tspaces ", "too many spaces"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CleanText(tt.in))
		})
	}
}

func TestNormalizeIngredient(t *testing.T) {
	p := NewPreprocessor(testLogger())

	tests := []struct {
		name, in, want string
	}{
		{"removes quantity and unit", "2 cups flour", "flour"},
		{"removes fractions", "1/2 tsp salt", "salt"},
		{"folds plurals", "3 tomatoes", "tomato"},
		{"folds oil variants", "2 tablespoons olive oil", "oil"},
		{"removes preparation terms", "1 onion, finely chopped", "onion finely"},
		{"removes filler phrases", "salt to taste", "salt"},
		{"folds garlic variants", "4 garlic cloves", "garlic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.NormalizeIngredient(tt.in))
		})
	}
}

func TestPreprocessIngredients(t *testing.T) {
	p := NewPreprocessor(testLogger())

	t.Run("dedupes while preserving order", func(t *testing.T) {
		got := p.PreprocessIngredients([]string{
			"2 cups flour",
			"1 cup flour",
			"3 tomatoes",
			"1 tomato",
		})
		assert.Equal(t, []string{"flour", "tomato"}, got)
	})

	t.Run("drops empty and single-character results", func(t *testing.T) {
		got := p.PreprocessIngredients([]string{"2 cups", "1 g", "salt"})
		assert.Equal(t, []string{"salt"}, got)
	})

	t.Run("nil input stays nil", func(t *testing.T) {
		assert.Nil(t, p.PreprocessIngredients(nil))
	})
}

func TestEnrichRecipes(t *testing.T) {
	p := NewPreprocessor(testLogger())

	t.Run("fills derived fields", func(t *testing.T) {
		recipes := p.EnrichRecipes([]models.RecipeRecord{{
			Title:        "Tomato Pasta",
			Ingredients:  []string{"200 g pasta", "3 tomatoes", "2 cloves garlic"},
			Instructions: []string{"Boil pasta.", "Make sauce.", "Combine."},
		}})
		require.Len(t, recipes, 1)
		rec := recipes[0]

		assert.Equal(t, []string{"pasta", "tomato", "garlic"}, rec.NormalizedIngredients)
		require.NotNil(t, rec.Complexity)
		assert.Greater(t, *rec.Complexity, 0.0)
		assert.LessOrEqual(t, *rec.Complexity, 1.0)
		require.NotNil(t, rec.CookingTimeMinutes)
		assert.True(t, rec.EstimatedTime)
		assert.GreaterOrEqual(t, *rec.CookingTimeMinutes, 20)
		assert.LessOrEqual(t, *rec.CookingTimeMinutes, 60)
		assert.NotEmpty(t, rec.RecipeHash)
		assert.Contains(t, rec.Tags, "italian")
		assert.Contains(t, rec.Tags, "vegetarian")
	})

	t.Run("existing cooking time is kept", func(t *testing.T) {
		mins := 45
		recipes := p.EnrichRecipes([]models.RecipeRecord{{
			Title:              "Stew",
			Ingredients:        []string{"beef"},
			CookingTimeMinutes: &mins,
		}})
		require.Len(t, recipes, 1)
		assert.Equal(t, 45, *recipes[0].CookingTimeMinutes)
		assert.False(t, recipes[0].EstimatedTime)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		in := []models.RecipeRecord{{Title: "Soup", Ingredients: []string{"1 onion"}}}
		p.EnrichRecipes(in)
		assert.Nil(t, in[0].NormalizedIngredients)
		assert.Nil(t, in[0].Complexity)
	})
}

func TestGenerateTags(t *testing.T) {
	p := NewPreprocessor(testLogger())

	t.Run("meat dishes are not vegetarian", func(t *testing.T) {
		tags := p.GenerateTags(&models.RecipeRecord{
			Title:       "Grilled Chicken Dinner",
			Ingredients: []string{"chicken breast", "lemon"},
		})
		assert.NotContains(t, tags, "vegetarian")
		assert.Contains(t, tags, "grilled")
		assert.Contains(t, tags, "dinner")
	})

	t.Run("vegan detection excludes animal products", func(t *testing.T) {
		tags := p.GenerateTags(&models.RecipeRecord{
			Title:       "Green Salad",
			Ingredients: []string{"lettuce", "cucumber", "oil"},
		})
		assert.Contains(t, tags, "vegetarian")
		assert.Contains(t, tags, "vegan")
		assert.Contains(t, tags, "lunch")
	})

	t.Run("dessert keywords tag desserts", func(t *testing.T) {
		tags := p.GenerateTags(&models.RecipeRecord{
			Title:       "Chocolate Cake",
			Ingredients: []string{"flour", "sugar", "chocolate"},
		})
		assert.Contains(t, tags, "dessert")
	})
}
