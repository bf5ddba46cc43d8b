package models

import (
	"time"

	"github.com/google/uuid"
)

// PastInteraction is one historical touch of a user on a recipe.
type PastInteraction struct {
	RecipeID     uuid.UUID  `json:"recipe_id" validate:"required"`
	Rating       *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	LastViewedAt *time.Time `json:"last_viewed_at,omitempty"`
	Saved        *bool      `json:"saved,omitempty"`
}

// UserPreferences is the preference snapshot handed to the enhancement
// engine. The core reads it and never mutates it.
type UserPreferences struct {
	Favorites           []uuid.UUID          `json:"favorites"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions" validate:"dive,oneof=vegetarian vegan gluten-free dairy-free nut-free keto paleo halal kosher"`
	CuisinePreferences  []CuisineType        `json:"cuisine_preferences" validate:"dive,oneof=italian mexican asian indian mediterranean american french other"`
	PastInteractions    []PastInteraction    `json:"past_interactions" validate:"dive"`
}
