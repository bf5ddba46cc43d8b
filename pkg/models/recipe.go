package models

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is a single recipe ingredient line. Quantity is a pointer so
// that an absent quantity and an explicit zero report as different failures.
type Ingredient struct {
	Name     string   `json:"name" validate:"required,min=1"`
	Quantity *float64 `json:"quantity" validate:"required,gt=0"`
	Unit     string   `json:"unit" validate:"required,min=1"`
	Note     *string  `json:"note,omitempty"`
}

// RecipeBase holds the fields shared by every recipe payload.
type RecipeBase struct {
	Title               string               `json:"title" validate:"required,min=1,max=255"`
	Description         string               `json:"description" validate:"required,min=1"`
	PrepTimeMinutes     int                  `json:"prep_time_minutes" validate:"gte=0"`
	CookTimeMinutes     int                  `json:"cook_time_minutes" validate:"gte=0"`
	Servings            *int                 `json:"servings" validate:"required,gt=0"`
	Difficulty          Difficulty           `json:"difficulty" validate:"required,oneof=easy medium hard"`
	CuisineType         CuisineType          `json:"cuisine_type" validate:"required,oneof=italian mexican asian indian mediterranean american french other"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions" validate:"dive,oneof=vegetarian vegan gluten-free dairy-free nut-free keto paleo halal kosher"`
	MealType            MealType             `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack dessert"`
	Calories            *float64             `json:"calories,omitempty" validate:"omitempty,gte=0"`
	Protein             *float64             `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs               *float64             `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fat                 *float64             `json:"fat,omitempty" validate:"omitempty,gte=0"`
}

// CreateRecipeRequest is the payload for creating a recipe.
type CreateRecipeRequest struct {
	RecipeBase
	Ingredients  []Ingredient `json:"ingredients" validate:"required,min=1,dive"`
	Instructions []string     `json:"instructions" validate:"required,min=1,dive,min=1"`
	Tags         []string     `json:"tags" validate:"dive,min=1"`
	ImageURL     *string      `json:"image_url,omitempty"`
}

// RecipeResponse is a stored recipe as returned to clients.
type RecipeResponse struct {
	CreateRecipeRequest
	ID            uuid.UUID `json:"id" validate:"required"`
	Rating        float64   `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int       `json:"review_count" validate:"gte=0"`
	FavoriteCount int       `json:"favorite_count" validate:"gte=0"`
	IsFavorite    *bool     `json:"is_favorite,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateRecipeRequest carries a partial recipe update. Every field is
// three-state: absent means unchanged, null means clear, a value replaces.
type UpdateRecipeRequest struct {
	Title               Optional[string]               `json:"title,omitzero"`
	Description         Optional[string]               `json:"description,omitzero"`
	PrepTimeMinutes     Optional[int]                  `json:"prep_time_minutes,omitzero"`
	CookTimeMinutes     Optional[int]                  `json:"cook_time_minutes,omitzero"`
	Servings            Optional[int]                  `json:"servings,omitzero"`
	Difficulty          Optional[Difficulty]           `json:"difficulty,omitzero"`
	CuisineType         Optional[CuisineType]          `json:"cuisine_type,omitzero"`
	DietaryRestrictions Optional[[]DietaryRestriction] `json:"dietary_restrictions,omitzero"`
	MealType            Optional[MealType]             `json:"meal_type,omitzero"`
	Calories            Optional[float64]              `json:"calories,omitzero"`
	Protein             Optional[float64]              `json:"protein,omitzero"`
	Carbs               Optional[float64]              `json:"carbs,omitzero"`
	Fat                 Optional[float64]              `json:"fat,omitzero"`
	Ingredients         Optional[[]Ingredient]         `json:"ingredients,omitzero"`
	Instructions        Optional[[]string]             `json:"instructions,omitzero"`
	Tags                Optional[[]string]             `json:"tags,omitzero"`
	ImageURL            Optional[string]               `json:"image_url,omitzero"`
}

// Empty reports whether the update carries no fields at all.
func (u *UpdateRecipeRequest) Empty() bool {
	return !u.Title.Present() && !u.Description.Present() &&
		!u.PrepTimeMinutes.Present() && !u.CookTimeMinutes.Present() &&
		!u.Servings.Present() && !u.Difficulty.Present() &&
		!u.CuisineType.Present() && !u.DietaryRestrictions.Present() &&
		!u.MealType.Present() && !u.Calories.Present() &&
		!u.Protein.Present() && !u.Carbs.Present() && !u.Fat.Present() &&
		!u.Ingredients.Present() && !u.Instructions.Present() &&
		!u.Tags.Present() && !u.ImageURL.Present()
}

// RecipeRating is one user's rating of one recipe. Persistence enforces a
// single rating per (recipe, user) pair.
type RecipeRating struct {
	RecipeID uuid.UUID `json:"recipe_id" validate:"required"`
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Rating   float64   `json:"rating" validate:"gte=0,lte=5"`
	Comment  *string   `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
