package models

// MaxPageSize bounds how many recipes a single page may return.
const MaxPageSize = 100

// RecipeSearchParams are the filters, sorting and pagination for a recipe
// search. Zero-valued filters are simply not applied.
type RecipeSearchParams struct {
	Query               string               `json:"query"`
	CuisineTypes        []CuisineType        `json:"cuisine_types" validate:"dive,oneof=italian mexican asian indian mediterranean american french other"`
	MealTypes           []MealType           `json:"meal_types" validate:"dive,oneof=breakfast lunch dinner snack dessert"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions" validate:"dive,oneof=vegetarian vegan gluten-free dairy-free nut-free keto paleo halal kosher"`
	Difficulty          *Difficulty          `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	MaxPrepTimeMinutes  *int                 `json:"max_prep_time_minutes,omitempty" validate:"omitempty,gt=0"`
	MaxCookTimeMinutes  *int                 `json:"max_cook_time_minutes,omitempty" validate:"omitempty,gt=0"`
	Ingredients         []string             `json:"ingredients" validate:"dive,min=1"`
	MinRating           *float64             `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Tags                []string             `json:"tags" validate:"dive,min=1"`
	Page                int                  `json:"page" validate:"gte=1"`
	PageSize            int                  `json:"page_size" validate:"gt=0,lte=100"`
	SortBy              SortKey              `json:"sort_by" validate:"omitempty,oneof=rating createdAt popularity"`
	SortDirection       SortDirection        `json:"sort_direction" validate:"omitempty,oneof=asc desc"`
}

// Pagination is the computed paging block of a paginated response.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// PaginatedRecipes is one page of recipe search results.
type PaginatedRecipes struct {
	Recipes []RecipeResponse `json:"recipes"`
	Pagination
}
