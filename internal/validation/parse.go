package validation

import (
	"github.com/recipegenie/core/pkg/models"
)

// ParseIngredient validates a single ingredient payload.
func ParseIngredient(data []byte) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := decodeStrict(data, &ing); err != nil {
		return nil, err
	}
	if errs := checkStruct(&ing); errs != nil {
		return nil, errs
	}
	return &ing, nil
}

// ParseCreateRecipe validates a recipe creation payload.
func ParseCreateRecipe(data []byte) (*models.CreateRecipeRequest, error) {
	var req models.CreateRecipeRequest
	if err := decodeStrict(data, &req); err != nil {
		return nil, err
	}
	if errs := checkStruct(&req); errs != nil {
		return nil, errs
	}
	return &req, nil
}

// ParseRecipe validates a full recipe record, including the cross-field
// timestamp ordering the struct rules cannot express.
func ParseRecipe(data []byte) (*models.RecipeResponse, error) {
	var rec models.RecipeResponse
	if err := decodeStrict(data, &rec); err != nil {
		return nil, err
	}
	errs := checkStruct(&rec)
	if !rec.CreatedAt.IsZero() && !rec.UpdatedAt.IsZero() && rec.UpdatedAt.Before(rec.CreatedAt) {
		errs = append(errs, &InvalidValueError{
			Field:   "updated_at",
			Message: "must not precede created_at",
		})
	}
	if errs != nil {
		return nil, errs
	}
	return &rec, nil
}

// ParseRating validates a recipe rating payload.
func ParseRating(data []byte) (*models.RecipeRating, error) {
	var r models.RecipeRating
	if err := decodeStrict(data, &r); err != nil {
		return nil, err
	}
	if errs := checkStruct(&r); errs != nil {
		return nil, errs
	}
	return &r, nil
}

// ParseSearchParams validates recipe search parameters. Absent paging and
// sorting get the conventional defaults before validation; every explicit
// value is checked as given.
func ParseSearchParams(data []byte) (*models.RecipeSearchParams, error) {
	var p models.RecipeSearchParams
	if err := decodeStrict(data, &p); err != nil {
		return nil, err
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
	if p.SortBy == "" {
		p.SortBy = models.SortByCreatedAt
	}
	if p.SortDirection == "" {
		p.SortDirection = models.SortDesc
	}
	if errs := checkStruct(&p); errs != nil {
		return nil, errs
	}
	return &p, nil
}

// ParseUserPreferences validates a user preference snapshot.
func ParseUserPreferences(data []byte) (*models.UserPreferences, error) {
	var p models.UserPreferences
	if err := decodeStrict(data, &p); err != nil {
		return nil, err
	}
	if errs := checkStruct(&p); errs != nil {
		return nil, errs
	}
	return &p, nil
}

// ParseEnhanceRequest validates an enhancement request. The wrapped recipe
// records are open-extension: their undeclared fields are preserved, never
// rejected.
func ParseEnhanceRequest(data []byte) (*models.EnhanceRecipesRequest, error) {
	var req models.EnhanceRecipesRequest
	if err := decodeOpen(data, &req); err != nil {
		return nil, err
	}
	errs := checkStruct(&req)
	if req.Recipes == nil {
		// A present-but-empty list is a valid no-op request; an absent
		// list is not.
		errs = append(errs, &MissingFieldError{Field: "recipes"})
	}
	for _, rec := range req.Recipes {
		errs = append(errs, checkRecipeRecord(&rec)...)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &req, nil
}

// ParseRecipeRecord validates one open-extension recipe record.
func ParseRecipeRecord(data []byte) (*models.RecipeRecord, error) {
	var rec models.RecipeRecord
	if err := decodeOpen(data, &rec); err != nil {
		return nil, err
	}
	if errs := checkRecipeRecord(&rec); len(errs) > 0 {
		return nil, errs
	}
	return &rec, nil
}

// ParseEnhanceResponse validates an enhancement response, for consumers
// reading the engine's output back across a process boundary.
func ParseEnhanceResponse(data []byte) (*models.EnhanceRecipesResponse, error) {
	var resp models.EnhanceRecipesResponse
	if err := decodeOpen(data, &resp); err != nil {
		return nil, err
	}
	var errs Errors
	for _, rec := range resp.Recipes {
		errs = append(errs, checkRecipeRecord(&rec)...)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &resp, nil
}

// checkRecipeRecord applies the declared-field invariants of a loose recipe
// record. Extra fields are deliberately unexamined.
func checkRecipeRecord(rec *models.RecipeRecord) Errors {
	var errs Errors
	if rec.NutritionalInfo != nil {
		errs = append(errs, checkStruct(rec.NutritionalInfo)...)
	}
	if rec.Popularity != nil && *rec.Popularity < 0 {
		errs = append(errs, &RangeError{Field: "popularity", Value: *rec.Popularity, Bound: ">= 0"})
	}
	if rec.Complexity != nil && (*rec.Complexity < 0 || *rec.Complexity > 1) {
		errs = append(errs, &RangeError{Field: "complexity", Value: *rec.Complexity, Bound: "0 <= value <= 1"})
	}
	if rec.CookingTimeMinutes != nil && *rec.CookingTimeMinutes < 0 {
		errs = append(errs, &RangeError{Field: "cooking_time_minutes", Value: *rec.CookingTimeMinutes, Bound: ">= 0"})
	}
	if rec.AIRelevanceScore != nil && *rec.AIRelevanceScore < 0 {
		errs = append(errs, &RangeError{Field: "ai_relevance_score", Value: *rec.AIRelevanceScore, Bound: ">= 0"})
	}
	if rec.AIRank != nil && *rec.AIRank < 1 {
		errs = append(errs, &RangeError{Field: "ai_rank", Value: *rec.AIRank, Bound: ">= 1"})
	}
	return errs
}

// ParseAnalysisRequest validates an ingredient analysis request.
func ParseAnalysisRequest(data []byte) (*models.IngredientAnalysisRequest, error) {
	var req models.IngredientAnalysisRequest
	if err := decodeStrict(data, &req); err != nil {
		return nil, err
	}
	if errs := checkStruct(&req); errs != nil {
		return nil, errs
	}
	return &req, nil
}

// ParseShoppingListResult validates a shopping list result, enforcing the
// success/error exclusivity convention.
func ParseShoppingListResult(data []byte) (*models.ShoppingListResult, error) {
	var res models.ShoppingListResult
	if err := decodeStrict(data, &res); err != nil {
		return nil, err
	}
	errs := checkStruct(&res)
	if res.Error != "" && res.Success {
		errs = append(errs, &InvalidValueError{
			Field:   "success",
			Message: "must be false when error is set",
		})
	}
	if errs != nil {
		return nil, errs
	}
	return &res, nil
}

// ParseTrainingRequest validates a model training request.
func ParseTrainingRequest(data []byte) (*models.TrainRequest, error) {
	var req models.TrainRequest
	if err := decodeStrict(data, &req); err != nil {
		return nil, err
	}
	if errs := checkStruct(&req); errs != nil {
		return nil, errs
	}
	return &req, nil
}
