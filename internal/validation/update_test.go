package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipegenie/core/pkg/models"
)

func TestParseUpdateRecipe(t *testing.T) {
	t.Run("single field update leaves the rest unrepresented", func(t *testing.T) {
		upd, err := ParseUpdateRecipe([]byte(`{"servings": 4}`))
		require.NoError(t, err)

		v, ok := upd.Servings.Get()
		assert.True(t, ok)
		assert.Equal(t, 4, v)

		assert.False(t, upd.Title.Present())
		assert.False(t, upd.Ingredients.Present())
		assert.False(t, upd.Tags.Present())
		assert.False(t, upd.Empty())
	})

	t.Run("empty update is accepted and distinguishable", func(t *testing.T) {
		upd, err := ParseUpdateRecipe([]byte(`{}`))
		require.NoError(t, err)
		assert.True(t, upd.Empty())
	})

	t.Run("null clears an optional field", func(t *testing.T) {
		upd, err := ParseUpdateRecipe([]byte(`{"calories": null, "image_url": null}`))
		require.NoError(t, err)
		assert.True(t, upd.Calories.IsNull())
		assert.True(t, upd.ImageURL.IsNull())
	})

	t.Run("null on a required field is rejected", func(t *testing.T) {
		_, err := ParseUpdateRecipe([]byte(`{"title": null}`))
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "title", invalid.Field)
	})

	t.Run("present fields are validated as given", func(t *testing.T) {
		_, err := ParseUpdateRecipe([]byte(`{"servings": 0, "difficulty": "impossible"}`))
		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)

		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "servings", rangeErr.Field)

		var enumErr *InvalidEnumError
		require.ErrorAs(t, err, &enumErr)
		assert.Equal(t, "difficulty", enumErr.Field)
	})

	t.Run("explicitly empty list is distinct from absent", func(t *testing.T) {
		upd, err := ParseUpdateRecipe([]byte(`{"tags": []}`))
		require.NoError(t, err)
		tags, ok := upd.Tags.Get()
		assert.True(t, ok)
		assert.Empty(t, tags)
	})

	t.Run("ingredients are validated element-wise", func(t *testing.T) {
		_, err := ParseUpdateRecipe([]byte(`{"ingredients": [{"name": "salt", "quantity": -1, "unit": "tsp"}]}`))
		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "quantity", rangeErr.Field)
	})

	t.Run("empty instructions list is rejected", func(t *testing.T) {
		_, err := ParseUpdateRecipe([]byte(`{"instructions": []}`))
		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "instructions", rangeErr.Field)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := ParseUpdateRecipe([]byte(`{"servngs": 4}`))
		var unknown *UnknownFieldError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "servngs", unknown.Field)
	})

	t.Run("dietary restrictions may be cleared", func(t *testing.T) {
		upd, err := ParseUpdateRecipe([]byte(`{"dietary_restrictions": null}`))
		require.NoError(t, err)
		assert.True(t, upd.DietaryRestrictions.IsNull())
	})

	t.Run("invalid dietary restriction is rejected", func(t *testing.T) {
		_, err := ParseUpdateRecipe([]byte(`{"dietary_restrictions": ["carnivore"]}`))
		var enumErr *InvalidEnumError
		require.ErrorAs(t, err, &enumErr)
		assert.Equal(t, "dietary_restrictions", enumErr.Field)
		assert.Equal(t, "carnivore", enumErr.Value)
	})
}

func TestUpdateRecipeMarshalRoundTrip(t *testing.T) {
	// Serializing an update must emit exactly the present fields: absent
	// ones are omitted rather than degraded to null, so the document can
	// be re-parsed without inventing clears.
	upd := models.UpdateRecipeRequest{
		Title: models.Some("Renamed"),
		Tags:  models.Null[[]string](),
	}
	data, err := json.Marshal(&upd)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "title")
	assert.Contains(t, keys, "tags")

	back, err := ParseUpdateRecipe(data)
	require.NoError(t, err)
	v, ok := back.Title.Get()
	assert.True(t, ok)
	assert.Equal(t, "Renamed", v)
	assert.True(t, back.Tags.IsNull())
	assert.False(t, back.Description.Present())
}

func TestParseUpdateRecipeConsumesPartial(t *testing.T) {
	// An update applied field by field must touch exactly the present
	// fields.
	upd, err := ParseUpdateRecipe([]byte(`{"title": "New Title", "fat": null}`))
	require.NoError(t, err)

	servings := 2
	base := models.RecipeBase{Title: "Old", Servings: &servings}
	fat := 12.0
	base.Fat = &fat

	if v, ok := upd.Title.Get(); ok {
		base.Title = v
	}
	if upd.Fat.IsNull() {
		base.Fat = nil
	}
	if v, ok := upd.Servings.Get(); ok {
		base.Servings = &v
	}

	assert.Equal(t, "New Title", base.Title)
	assert.Nil(t, base.Fat)
	require.NotNil(t, base.Servings)
	assert.Equal(t, 2, *base.Servings)
}
