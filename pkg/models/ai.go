package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// FlexCount accepts a count that upstream services serialize inconsistently
// as a JSON number or a numeric string ("4 servings" style suffixes are not
// accepted).
type FlexCount struct {
	Value int
}

func (f *FlexCount) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = int(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", str, err)
		}
		f.Value = n
		return nil
	}
	return fmt.Errorf("count must be a number or numeric string, got %s", string(data))
}

func (f FlexCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// NutritionalInfo is the per-recipe nutrition block the enhancement engine
// attaches when the source recipe carries macros.
type NutritionalInfo struct {
	Calories *float64 `json:"calories,omitempty" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat,omitempty" validate:"omitempty,gte=0"`
}

// RecipeRecord is the loosely typed recipe shape exchanged with the
// enhancement engine. Recipes arrive from external APIs, so declared fields
// are validated while unrecognized fields are preserved verbatim in Extra.
// The enhancement fields (ai_relevance_score onward) are filled by the
// recommender and absent on input.
type RecipeRecord struct {
	ID                     string           `json:"id,omitempty"`
	Title                  string           `json:"title,omitempty"`
	Description            string           `json:"description,omitempty"`
	Cuisine                string           `json:"cuisine,omitempty"`
	Ingredients            []string         `json:"ingredients,omitempty"`
	Instructions           []string         `json:"instructions,omitempty"`
	Tags                   []string         `json:"tags,omitempty"`
	Servings               *FlexCount       `json:"servings,omitempty"`
	CookingTimeMinutes     *int             `json:"cooking_time_minutes,omitempty"`
	EstimatedTime          bool             `json:"estimated_time,omitempty"`
	Popularity             *float64         `json:"popularity,omitempty"`
	Complexity             *float64         `json:"complexity,omitempty"`
	NormalizedIngredients  []string         `json:"normalized_ingredients,omitempty"`
	RecipeHash             string           `json:"recipe_hash,omitempty"`
	AIRelevanceScore       *float64         `json:"ai_relevance_score,omitempty"`
	AIRank                 *int             `json:"ai_rank,omitempty"`
	IngredientMatchScore   *float64         `json:"ingredient_match_score,omitempty"`
	PreferenceScore        *float64         `json:"preference_score,omitempty"`
	NutritionalInfo        *NutritionalInfo `json:"nutritional_info,omitempty"`
	SuggestedModifications []string         `json:"suggested_modifications,omitempty"`
	CookingTips            []string         `json:"cooking_tips,omitempty"`

	// Extra holds fields this contract does not declare. They survive a
	// parse/serialize round trip untouched.
	Extra map[string]json.RawMessage `json:"-"`
}

// recipeRecordAlias sheds RecipeRecord's methods so the default JSON codec
// can be reused inside the custom one.
type recipeRecordAlias RecipeRecord

var (
	recipeRecordKeysOnce sync.Once
	recipeRecordKeys     map[string]struct{}
)

func declaredRecipeKeys() map[string]struct{} {
	recipeRecordKeysOnce.Do(func() {
		recipeRecordKeys = make(map[string]struct{})
		t := reflect.TypeOf(RecipeRecord{})
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			name := strings.Split(tag, ",")[0]
			if name == "" || name == "-" {
				continue
			}
			recipeRecordKeys[name] = struct{}{}
		}
	})
	return recipeRecordKeys
}

func (r *RecipeRecord) UnmarshalJSON(data []byte) error {
	var a recipeRecordAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	known := declaredRecipeKeys()
	for k := range raw {
		if _, ok := known[k]; ok {
			delete(raw, k)
		}
	}
	if len(raw) > 0 {
		a.Extra = raw
	}
	*r = RecipeRecord(a)
	return nil
}

func (r RecipeRecord) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(recipeRecordAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// EnhanceRecipesRequest asks the enhancement engine to rank and enrich a
// batch of recipes for one user.
type EnhanceRecipesRequest struct {
	Recipes         []RecipeRecord   `json:"recipes"`
	UserPreferences *UserPreferences `json:"user_preferences,omitempty"`
	Ingredients     []string         `json:"ingredients,omitempty"`
}

// EnhanceMetadata describes one enhancement pass.
type EnhanceMetadata struct {
	TotalCount            int     `json:"total_count"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
	ModelVersion          string  `json:"model_version,omitempty"`
	Message               string  `json:"message,omitempty"`
}

// EnhanceRecipesResponse is the ranked, enriched result of an enhancement
// pass.
type EnhanceRecipesResponse struct {
	Recipes  []RecipeRecord  `json:"recipes"`
	Metadata EnhanceMetadata `json:"metadata"`
}
