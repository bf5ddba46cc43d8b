package service

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"

	"github.com/recipegenie/core/pkg/models"
)

// ingredientSubstitutions folds common ingredient spellings onto one
// canonical form.
var ingredientSubstitutions = []struct{ from, to string }{
	{"tomatoes", "tomato"},
	{"onions", "onion"},
	{"potatoes", "potato"},
	{"carrots", "carrot"},
	{"fresh garlic", "garlic"},
	{"minced garlic", "garlic"},
	{"garlic cloves", "garlic"},
	{"olive oil", "oil"},
	{"vegetable oil", "oil"},
	{"canola oil", "oil"},
	{"bell peppers", "bell pepper"},
	{"red pepper", "bell pepper"},
	{"green pepper", "bell pepper"},
}

var (
	quantityRe    = regexp.MustCompile(`\d+/\d+|\d+\.\d+|\d+`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	unitsRe       = regexp.MustCompile(`\b(cups?|tablespoons?|tbsp|teaspoons?|tsp|ounces?|oz|pounds?|lbs?|grams?|g|kilograms?|kg|ml|milliliters?|liters?|pinch(?:es)?|dash(?:es)?|pieces?|slices?|bunch(?:es)?|cloves?|sprigs?|stalks?)\b`)
	cookingTermRe = regexp.MustCompile(`\b(fresh|chopped|diced|minced|sliced|grated|crushed|peeled|cubed|julienned|frozen|canned|dried)\b`)
	fillerRe      = regexp.MustCompile(`to taste|as needed|for serving|for garnish`)
	sentenceRe    = regexp.MustCompile(`[.!?]+`)
)

// Preprocessor normalizes ingredient text and enriches loose recipe records
// before scoring.
type Preprocessor struct {
	logger *logrus.Logger
}

func NewPreprocessor(logger *logrus.Logger) *Preprocessor {
	return &Preprocessor{logger: logger}
}

// CleanText lowercases, strips accents and punctuation (hyphens survive) and
// collapses whitespace.
func (p *Preprocessor) CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Decompose accented runes and drop the non-ASCII remainder.
	text = norm.NFKD.String(text)
	var b strings.Builder
	for _, r := range text {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsPunct(r) && r != '-' || unicode.IsSymbol(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(b.String(), " "))
}

// NormalizeIngredient reduces a raw ingredient line to its base ingredient:
// quantities, units, preparation terms and filler phrases are removed and
// common variants folded together.
func (p *Preprocessor) NormalizeIngredient(ingredient string) string {
	if ingredient == "" {
		return ""
	}
	s := p.CleanText(ingredient)
	s = quantityRe.ReplaceAllString(s, "")
	s = unitsRe.ReplaceAllString(s, "")
	for _, sub := range ingredientSubstitutions {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}
	s = cookingTermRe.ReplaceAllString(s, "")
	s = fillerRe.ReplaceAllString(s, "")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}

// PreprocessIngredients normalizes a list of raw ingredient lines, dropping
// empty or single-character results and deduplicating while preserving
// order.
func (p *Preprocessor) PreprocessIngredients(ingredients []string) []string {
	if len(ingredients) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ingredients))
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		normalized := p.NormalizeIngredient(ing)
		if len(normalized) <= 1 || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// EnrichRecipes fills in derived fields on loose recipe records: normalized
// ingredients, a complexity score, an estimated cooking time where none was
// given, generated tags and a dedupe hash. The input slice is not modified.
func (p *Preprocessor) EnrichRecipes(recipes []models.RecipeRecord) []models.RecipeRecord {
	if len(recipes) == 0 {
		return nil
	}
	enriched := make([]models.RecipeRecord, len(recipes))
	for i, rec := range recipes {
		if len(rec.Ingredients) > 0 {
			rec.NormalizedIngredients = p.PreprocessIngredients(rec.Ingredients)
		}

		complexity := p.complexityScore(&rec)
		rec.Complexity = &complexity

		if rec.CookingTimeMinutes == nil || *rec.CookingTimeMinutes == 0 {
			// 20-60 minutes depending on complexity.
			estimated := int(20 + complexity*40)
			rec.CookingTimeMinutes = &estimated
			rec.EstimatedTime = true
		}

		if len(rec.Tags) == 0 {
			rec.Tags = p.GenerateTags(&rec)
		}

		if rec.Title != "" && len(rec.Ingredients) > 0 {
			rec.RecipeHash = recipeHash(&rec)
		}

		enriched[i] = rec
	}
	p.logger.WithField("count", len(enriched)).Debug("enriched recipe records")
	return enriched
}

// complexityScore rates a recipe 0-1 from its ingredient and step counts,
// with diminishing returns past 15 ingredients and 10 steps.
func (p *Preprocessor) complexityScore(rec *models.RecipeRecord) float64 {
	score := 0.0
	if n := len(rec.Ingredients); n > 0 {
		score += minFloat(float64(n)/15, 1.0) * 0.5
	}
	if len(rec.Instructions) > 0 {
		score += minFloat(float64(len(rec.Instructions))/10, 1.0) * 0.5
	} else if rec.Description != "" {
		steps := len(sentenceRe.Split(rec.Description, -1))
		score += minFloat(float64(steps)/10, 1.0) * 0.5
	}
	return minFloat(score, 1.0)
}

func recipeHash(rec *models.RecipeRecord) string {
	h := fnv.New64a()
	h.Write([]byte(rec.Title))
	for _, ing := range rec.Ingredients {
		h.Write([]byte(ing))
	}
	return fmt.Sprintf("%x", h.Sum64())
}

var meatKeywords = []string{
	"chicken", "beef", "pork", "lamb", "turkey", "fish",
	"salmon", "tuna", "shrimp", "bacon", "ham", "sausage",
}

var animalProductKeywords = []string{
	"milk", "cheese", "cream", "yogurt", "butter",
	"egg", "honey", "mayo", "mayonnaise",
}

var cuisineKeywords = map[string][]string{
	"italian":       {"pasta", "pizza", "risotto", "italian"},
	"mexican":       {"taco", "burrito", "quesadilla", "mexican", "salsa"},
	"asian":         {"stir fry", "tofu", "soy sauce", "asian"},
	"indian":        {"curry", "masala", "indian"},
	"mediterranean": {"mediterranean", "greek", "feta", "olive"},
}

// GenerateTags derives tags from a recipe's title, ingredients and cuisine:
// diet type, meal slot, cooking method and cuisine hints.
func (p *Preprocessor) GenerateTags(rec *models.RecipeRecord) []string {
	tags := make(map[string]bool)
	if rec.Cuisine != "" {
		tags[strings.TrimSpace(strings.ToLower(rec.Cuisine))] = true
	}

	haystack := strings.ToLower(rec.Title + " " + strings.Join(rec.Ingredients, " "))

	if !containsAny(haystack, meatKeywords) {
		tags["vegetarian"] = true
		if !containsAny(haystack, animalProductKeywords) {
			tags["vegan"] = true
		}
	}

	switch {
	case containsAny(haystack, []string{"breakfast", "pancake", "oatmeal", "cereal"}):
		tags["breakfast"] = true
	case containsAny(haystack, []string{"sandwich", "wrap", "salad"}):
		tags["lunch"] = true
	case containsAny(haystack, []string{"dinner", "roast", "steak"}):
		tags["dinner"] = true
	}
	if containsAny(haystack, []string{"dessert", "cake", "cookie", "sweet", "chocolate", "ice cream"}) {
		tags["dessert"] = true
	}

	switch {
	case containsAny(haystack, []string{"grill", "grilled", "bbq", "barbecue"}):
		tags["grilled"] = true
	case containsAny(haystack, []string{"bake", "baked", "roast", "roasted"}):
		tags["baked"] = true
	case containsAny(haystack, []string{"fry", "fried", "deep fried"}):
		tags["fried"] = true
	}

	for cuisine, keywords := range cuisineKeywords {
		if containsAny(haystack, keywords) {
			tags[cuisine] = true
		}
	}

	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
