package models

// IngredientAnalysisRequest asks for an analysis of a set of ingredients,
// optionally in the context of a recipe being prepared.
type IngredientAnalysisRequest struct {
	Ingredients          []string             `json:"ingredients" validate:"required,min=1,dive,min=1"`
	DietaryRestrictions  []DietaryRestriction `json:"dietary_restrictions" validate:"dive,oneof=vegetarian vegan gluten-free dairy-free nut-free keto paleo halal kosher"`
	RecipeTitle          *string              `json:"recipe_title,omitempty"`
	RecipeInstructions   []string             `json:"recipe_instructions,omitempty"`
	GenerateShoppingList bool                 `json:"generate_shopping_list"`
	SuggestSubstitutions bool                 `json:"suggest_substitutions"`
}

// CategoryMatch scores how strongly a set of ingredients suggests a recipe
// category.
type CategoryMatch struct {
	Name       string  `json:"name"`
	MatchScore float64 `json:"match_score"`
}

// IngredientAnalysis is the nested analysis block of an analysis response.
// Every field is optional; the engine fills what it could derive.
type IngredientAnalysis struct {
	SuitableCategories   []CategoryMatch     `json:"suitable_categories,omitempty"`
	IngredientGroups     map[string][]string `json:"ingredient_groups,omitempty"`
	NutritionalSummary   *NutritionalInfo    `json:"nutritional_summary,omitempty"`
	FlavorProfile        []string            `json:"flavor_profile,omitempty"`
	CookingTips          []string            `json:"cooking_tips,omitempty"`
	TechniqueSuggestions []string            `json:"technique_suggestions,omitempty"`
	AlternativeMethods   []string            `json:"alternative_methods,omitempty"`
	ShoppingList         []string            `json:"shopping_list,omitempty"`
	CategorizedList      map[string][]string `json:"categorized_list,omitempty"`
}

// IngredientAnalysisResponse is the full result of an ingredient analysis.
type IngredientAnalysisResponse struct {
	Analysis           *IngredientAnalysis `json:"analysis,omitempty"`
	SuggestedAdditions []string            `json:"suggested_additions,omitempty"`
	Substitutions      map[string][]string `json:"substitutions,omitempty"`
	MissingEssentials  []string            `json:"missing_essentials,omitempty"`
}

// ShoppingListResult is the outcome of building a shopping list. Error and
// Success are mutually exclusive: a non-empty Error implies Success=false.
type ShoppingListResult struct {
	Success         bool                `json:"success"`
	Error           string              `json:"error,omitempty"`
	ShoppingList    []string            `json:"shopping_list"`
	CategorizedList map[string][]string `json:"categorized_list,omitempty"`
	RecipeCount     int                 `json:"recipe_count" validate:"gte=0"`
	AIEnhanced      bool                `json:"ai_enhanced"`
}
