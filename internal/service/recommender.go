package service

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/recipegenie/core/config"
	"github.com/recipegenie/core/pkg/models"
)

// Recommender ranks and enriches recipe batches with personalized relevance
// scores. Scoring is deterministic: a weighted blend of ingredient match,
// user preference, popularity and complexity components.
type Recommender struct {
	cfg    *config.RecommenderConfig
	pre    *Preprocessor
	logger *logrus.Logger

	mu      sync.Mutex
	lastRun time.Time
}

func NewRecommender(cfg *config.RecommenderConfig, pre *Preprocessor, logger *logrus.Logger) *Recommender {
	return &Recommender{cfg: cfg, pre: pre, logger: logger}
}

// Recommend runs one enhancement pass: preprocesses the caller's pantry
// ingredients, enriches the recipe records, scores and ranks them. The
// request is read-only; the response carries fresh records.
func (r *Recommender) Recommend(req *models.EnhanceRecipesRequest) *models.EnhanceRecipesResponse {
	start := time.Now()

	if len(req.Recipes) == 0 {
		return &models.EnhanceRecipesResponse{
			Recipes:  []models.RecipeRecord{},
			Metadata: models.EnhanceMetadata{Message: "no recipes to enhance"},
		}
	}

	pantry := r.pre.PreprocessIngredients(req.Ingredients)
	recipes := r.pre.EnrichRecipes(req.Recipes)

	matchScores := make([]float64, len(recipes))
	prefScores := make([]float64, len(recipes))
	popScores := make([]float64, len(recipes))
	for i := range recipes {
		if len(pantry) > 0 {
			matchScores[i] = r.ingredientMatch(recipes[i].NormalizedIngredients, pantry)
		}
		if req.UserPreferences != nil {
			prefScores[i] = r.preferenceScore(&recipes[i], req.UserPreferences)
		}
		if recipes[i].Popularity != nil {
			popScores[i] = *recipes[i].Popularity
		}
	}
	normalize(matchScores)
	normalize(prefScores)
	normalize(popScores)

	for i := range recipes {
		rec := &recipes[i]
		score := matchScores[i]*r.cfg.IngredientMatchWeight +
			prefScores[i]*r.cfg.UserPreferenceWeight +
			popScores[i]*r.cfg.PopularityWeight

		if rec.Complexity != nil {
			// Favor middle complexity: neither trivial nor daunting.
			complexityScore := 1 - math.Abs(*rec.Complexity-0.5)*2
			score += complexityScore * r.cfg.ComplexityWeight
		}

		score = math.Round(score*10000) / 10000
		rec.AIRelevanceScore = &score
		if len(pantry) > 0 {
			rec.IngredientMatchScore = floatPtr(matchScores[i])
		}
		if req.UserPreferences != nil {
			rec.PreferenceScore = floatPtr(prefScores[i])
		}
		rec.NutritionalInfo = nutritionFromExtra(rec)
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		return *recipes[i].AIRelevanceScore > *recipes[j].AIRelevanceScore
	})
	for i := range recipes {
		rank := i + 1
		recipes[i].AIRank = &rank
	}

	elapsed := time.Since(start)
	r.mu.Lock()
	r.lastRun = time.Now()
	r.mu.Unlock()

	r.logger.WithFields(logrus.Fields{
		"recipes":    len(recipes),
		"elapsed_ms": elapsed.Milliseconds(),
	}).Info("generated recipe recommendations")

	return &models.EnhanceRecipesResponse{
		Recipes: recipes,
		Metadata: models.EnhanceMetadata{
			TotalCount:            len(recipes),
			ProcessingTimeSeconds: elapsed.Seconds(),
		},
	}
}

// LastRun reports when the recommender last completed a pass.
func (r *Recommender) LastRun() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRun
}

// ingredientMatch scores how much of a recipe's ingredient list the pantry
// covers, boosted when nearly everything is on hand.
func (r *Recommender) ingredientMatch(recipeIngredients, pantry []string) float64 {
	if len(recipeIngredients) == 0 || len(pantry) == 0 {
		return 0
	}
	matched := 0
	for _, ri := range recipeIngredients {
		for _, have := range pantry {
			if strings.Contains(ri, have) {
				matched++
				break
			}
		}
	}
	ratio := float64(matched) / float64(len(recipeIngredients))
	if ratio > r.cfg.MatchBoostThreshold {
		ratio *= r.cfg.MatchBoostFactor
	}
	return minFloat(ratio, 1.0)
}

// preferenceScore rates a recipe against a user's history: favorites and
// preferred cuisines boost it, tags matching the user's dietary restrictions
// penalize it, past ratings weigh in proportionally.
func (r *Recommender) preferenceScore(rec *models.RecipeRecord, prefs *models.UserPreferences) float64 {
	score := 0.0

	for _, fav := range prefs.Favorites {
		if rec.ID != "" && rec.ID == fav.String() {
			score += 1.0
			break
		}
	}

	cuisine := strings.ToLower(rec.Cuisine)
	for _, pref := range prefs.CuisinePreferences {
		if cuisine == string(pref) {
			score += 0.5
			break
		}
	}

	for _, restriction := range prefs.DietaryRestrictions {
		for _, tag := range rec.Tags {
			if strings.EqualFold(tag, string(restriction)) {
				score -= 0.7
				break
			}
		}
	}

	for _, interaction := range prefs.PastInteractions {
		if rec.ID != "" && rec.ID == interaction.RecipeID.String() && interaction.Rating != nil {
			score += (*interaction.Rating / 5.0) * 0.8
		}
	}

	return math.Max(score, 0)
}

// normalize rescales scores in place to the 0-1 range. All-zero inputs stay
// untouched.
func normalize(scores []float64) {
	if len(scores) == 0 {
		return
	}
	if max := floats.Max(scores); max > 0 {
		floats.Scale(1/max, scores)
	}
}

// nutritionFromExtra lifts macro fields some upstream APIs send at the top
// level of the recipe record into the typed nutrition block.
func nutritionFromExtra(rec *models.RecipeRecord) *models.NutritionalInfo {
	if rec.NutritionalInfo != nil {
		return rec.NutritionalInfo
	}
	info := &models.NutritionalInfo{}
	found := false
	for key, dst := range map[string]**float64{
		"calories": &info.Calories,
		"protein":  &info.Protein,
		"carbs":    &info.Carbs,
		"fat":      &info.Fat,
	} {
		if raw, ok := rec.Extra[key]; ok {
			var v float64
			if err := json.Unmarshal(raw, &v); err == nil && v >= 0 {
				*dst = &v
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	return info
}

func floatPtr(v float64) *float64 { return &v }
