package validation

import (
	"github.com/recipegenie/core/pkg/models"
)

// clearable lists the update fields an explicit null may clear. Everything
// else is part of a recipe's required shape and can only be replaced.
var clearable = map[string]bool{
	"calories":             true,
	"protein":              true,
	"carbs":                true,
	"fat":                  true,
	"image_url":            true,
	"tags":                 true,
	"dietary_restrictions": true,
}

// ParseUpdateRecipe validates a partial recipe update. Only fields present
// in the payload are checked; absent fields stay unrepresented so the caller
// can tell "unchanged" from "explicitly empty". No defaults are applied.
func ParseUpdateRecipe(data []byte) (*models.UpdateRecipeRequest, error) {
	var upd models.UpdateRecipeRequest
	if err := decodeStrict(data, &upd); err != nil {
		return nil, err
	}
	var errs Errors

	checkNull := func(field string, o interface{ IsNull() bool }) bool {
		if o.IsNull() && !clearable[field] {
			errs = append(errs, &InvalidValueError{Field: field, Message: "cannot be cleared"})
			return false
		}
		return !o.IsNull()
	}

	if upd.Title.Present() && checkNull("title", upd.Title) {
		if v := upd.Title.MustGet(); v == "" {
			errs = append(errs, &RangeError{Field: "title", Value: v, Bound: "length >= 1"})
		} else if len(v) > 255 {
			errs = append(errs, &RangeError{Field: "title", Value: v, Bound: "length <= 255"})
		}
	}
	if upd.Description.Present() && checkNull("description", upd.Description) {
		if upd.Description.MustGet() == "" {
			errs = append(errs, &RangeError{Field: "description", Value: "", Bound: "length >= 1"})
		}
	}
	if upd.PrepTimeMinutes.Present() && checkNull("prep_time_minutes", upd.PrepTimeMinutes) {
		if v := upd.PrepTimeMinutes.MustGet(); v < 0 {
			errs = append(errs, &RangeError{Field: "prep_time_minutes", Value: v, Bound: ">= 0"})
		}
	}
	if upd.CookTimeMinutes.Present() && checkNull("cook_time_minutes", upd.CookTimeMinutes) {
		if v := upd.CookTimeMinutes.MustGet(); v < 0 {
			errs = append(errs, &RangeError{Field: "cook_time_minutes", Value: v, Bound: ">= 0"})
		}
	}
	if upd.Servings.Present() && checkNull("servings", upd.Servings) {
		if v := upd.Servings.MustGet(); v <= 0 {
			errs = append(errs, &RangeError{Field: "servings", Value: v, Bound: "> 0"})
		}
	}
	if upd.Difficulty.Present() && checkNull("difficulty", upd.Difficulty) {
		if v := upd.Difficulty.MustGet(); !v.Valid() {
			errs = append(errs, enumError("difficulty", string(v), models.Difficulties()))
		}
	}
	if upd.CuisineType.Present() && checkNull("cuisine_type", upd.CuisineType) {
		if v := upd.CuisineType.MustGet(); !v.Valid() {
			errs = append(errs, enumError("cuisine_type", string(v), models.CuisineTypes()))
		}
	}
	if upd.DietaryRestrictions.Present() && checkNull("dietary_restrictions", upd.DietaryRestrictions) {
		for _, d := range upd.DietaryRestrictions.MustGet() {
			if !d.Valid() {
				errs = append(errs, enumError("dietary_restrictions", string(d), models.DietaryRestrictions()))
			}
		}
	}
	if upd.MealType.Present() && checkNull("meal_type", upd.MealType) {
		if v := upd.MealType.MustGet(); !v.Valid() {
			errs = append(errs, enumError("meal_type", string(v), models.MealTypes()))
		}
	}
	for field, o := range map[string]models.Optional[float64]{
		"calories": upd.Calories,
		"protein":  upd.Protein,
		"carbs":    upd.Carbs,
		"fat":      upd.Fat,
	} {
		if o.Present() && checkNull(field, o) {
			if v := o.MustGet(); v < 0 {
				errs = append(errs, &RangeError{Field: field, Value: v, Bound: ">= 0"})
			}
		}
	}
	if upd.Ingredients.Present() && checkNull("ingredients", upd.Ingredients) {
		ings := upd.Ingredients.MustGet()
		if len(ings) == 0 {
			errs = append(errs, &RangeError{Field: "ingredients", Value: ings, Bound: "length >= 1"})
		}
		for i := range ings {
			errs = append(errs, checkStruct(&ings[i])...)
		}
	}
	if upd.Instructions.Present() && checkNull("instructions", upd.Instructions) {
		steps := upd.Instructions.MustGet()
		if len(steps) == 0 {
			errs = append(errs, &RangeError{Field: "instructions", Value: steps, Bound: "length >= 1"})
		}
		for _, s := range steps {
			if s == "" {
				errs = append(errs, &RangeError{Field: "instructions", Value: s, Bound: "length >= 1"})
			}
		}
	}
	if upd.Tags.Present() && checkNull("tags", upd.Tags) {
		for _, tag := range upd.Tags.MustGet() {
			if tag == "" {
				errs = append(errs, &RangeError{Field: "tags", Value: tag, Bound: "length >= 1"})
			}
		}
	}
	if upd.ImageURL.Present() && checkNull("image_url", upd.ImageURL) {
		if upd.ImageURL.MustGet() == "" {
			errs = append(errs, &RangeError{Field: "image_url", Value: "", Bound: "length >= 1"})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &upd, nil
}

func enumError[T ~string](field, value string, allowed []T) error {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return &InvalidEnumError{Field: field, Value: value, Allowed: names}
}
