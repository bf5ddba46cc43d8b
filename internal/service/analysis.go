package service

import (
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/recipegenie/core/config"
	"github.com/recipegenie/core/pkg/models"
)

// categoryIngredients maps recipe categories to their signature ingredients.
var categoryIngredients = map[string][]string{
	"Italian":       {"pasta", "tomato", "basil", "mozzarella", "parmesan", "oil", "garlic"},
	"Mexican":       {"tortilla", "beans", "avocado", "cilantro", "lime", "jalapeno", "corn"},
	"Asian":         {"soy sauce", "ginger", "rice", "sesame oil", "tofu", "fish sauce", "rice vinegar"},
	"Mediterranean": {"feta", "cucumber", "chickpeas", "lemon", "olive", "tahini", "mint"},
	"American":      {"ground beef", "potato", "corn", "bread", "cheddar", "bacon", "ketchup"},
	"Dessert":       {"sugar", "flour", "vanilla", "chocolate", "butter", "egg", "cream"},
}

// foodGroups buckets ingredients for categorized lists. Order matters: the
// first matching group wins.
var foodGroups = []struct {
	name     string
	keywords []string
}{
	{"Proteins", []string{"chicken", "beef", "pork", "tofu", "fish", "shrimp", "egg", "beans", "lentils"}},
	{"Vegetables", []string{"onion", "tomato", "lettuce", "carrot", "broccoli", "pepper", "spinach", "zucchini"}},
	{"Fruits", []string{"apple", "banana", "orange", "berries", "mango", "lemon", "lime"}},
	{"Grains", []string{"rice", "pasta", "bread", "quinoa", "oats", "flour", "tortilla"}},
	{"Dairy", []string{"milk", "cheese", "yogurt", "cream", "butter"}},
	{"Seasonings", []string{"salt", "pepper", "garlic", "herb", "spice", "sauce"}},
}

// pairings suggests ingredients that go well with a base ingredient.
var pairings = map[string][]string{
	"tomato":  {"basil", "mozzarella", "oil", "garlic", "onion"},
	"chicken": {"garlic", "lemon", "rosemary", "thyme", "onion", "potato"},
	"beef":    {"onion", "garlic", "mushroom", "carrot", "potato", "red wine"},
	"pasta":   {"tomato sauce", "garlic", "parmesan", "oil", "basil"},
	"rice":    {"soy sauce", "egg", "peas", "carrot", "onion", "garlic"},
	"potato":  {"butter", "cheese", "bacon", "sour cream", "garlic", "rosemary"},
	"fish":    {"lemon", "butter", "garlic", "dill", "oil", "capers"},
}

// substitutionTable offers common swaps, keyed by the ingredient being
// replaced.
var substitutionTable = map[string][]string{
	"butter":     {"oil", "coconut oil", "margarine"},
	"milk":       {"oat milk", "almond milk", "soy milk"},
	"cream":      {"coconut cream", "cashew cream", "evaporated milk"},
	"egg":        {"flax egg", "applesauce", "mashed banana"},
	"sugar":      {"honey", "maple syrup", "date syrup"},
	"flour":      {"almond flour", "oat flour", "rice flour"},
	"soy sauce":  {"tamari", "coconut aminos"},
	"sour cream": {"greek yogurt", "creme fraiche"},
}

// pantryEssentials are the staples most recipes assume on hand.
var pantryEssentials = []string{"salt", "pepper", "oil", "garlic", "onion"}

// techniqueTips keys cooking advice to ingredients that benefit from it.
var techniqueTips = map[string]struct{ tip, technique string }{
	"garlic":  {"add garlic late to avoid burning it", "saute over medium heat"},
	"chicken": {"rest chicken a few minutes after cooking", "sear then finish in the oven"},
	"beef":    {"season beef generously before searing", "sear on high heat for a crust"},
	"rice":    {"rinse rice until the water runs clear", "steam covered without stirring"},
	"pasta":   {"salt the pasta water well", "finish the pasta in its sauce"},
	"fish":    {"pat fish dry before it hits the pan", "cook skin side down first"},
	"tofu":    {"press tofu to remove excess moisture", "pan-fry until golden on all sides"},
}

// Analyzer inspects ingredient sets: category affinity, food groups, pairing
// suggestions, substitutions and missing staples.
type Analyzer struct {
	cfg      *config.AnalysisConfig
	pre      *Preprocessor
	shopping *ShoppingListBuilder
	logger   *logrus.Logger
}

func NewAnalyzer(cfg *config.AnalysisConfig, pre *Preprocessor, shopping *ShoppingListBuilder, logger *logrus.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, pre: pre, shopping: shopping, logger: logger}
}

// AnalyzeIngredients builds the full analysis response for a validated
// request.
func (a *Analyzer) AnalyzeIngredients(req *models.IngredientAnalysisRequest) *models.IngredientAnalysisResponse {
	ingredients := a.pre.PreprocessIngredients(req.Ingredients)

	analysis := &models.IngredientAnalysis{
		SuitableCategories: a.suitableCategories(ingredients),
		IngredientGroups:   groupIngredients(ingredients),
	}

	tips, techniques := cookingAdvice(ingredients)
	analysis.CookingTips = tips
	analysis.TechniqueSuggestions = techniques
	analysis.FlavorProfile = flavorProfile(analysis.SuitableCategories)

	if req.GenerateShoppingList {
		result := a.shopping.Build(nil, ingredients, true)
		if result.Success {
			analysis.ShoppingList = result.ShoppingList
			analysis.CategorizedList = result.CategorizedList
		}
	}

	resp := &models.IngredientAnalysisResponse{
		Analysis:           analysis,
		SuggestedAdditions: a.SuggestAdditions(ingredients),
		MissingEssentials:  MissingEssentials(ingredients),
	}
	if req.SuggestSubstitutions {
		resp.Substitutions = substitutionsFor(ingredients, req.DietaryRestrictions)
	}

	a.logger.WithFields(logrus.Fields{
		"ingredients": len(ingredients),
		"categories":  len(analysis.SuitableCategories),
	}).Info("analyzed ingredients")

	return resp
}

// suitableCategories scores every recipe category against the ingredient
// set and keeps those above the configured threshold, best first.
func (a *Analyzer) suitableCategories(ingredients []string) []models.CategoryMatch {
	matches := make([]models.CategoryMatch, 0, len(categoryIngredients))
	for category, signature := range categoryIngredients {
		hits := 0
		for _, sig := range signature {
			for _, ing := range ingredients {
				if strings.Contains(ing, sig) {
					hits++
					break
				}
			}
		}
		score := float64(hits) / float64(len(signature))
		if score > a.cfg.CategoryThreshold {
			matches = append(matches, models.CategoryMatch{
				Name:       category,
				MatchScore: roundTo(score, 2),
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Name < matches[j].Name
	})
	return matches
}

// SuggestAdditions proposes ingredients that pair with what the user has,
// most frequently paired first, capped by configuration.
func (a *Analyzer) SuggestAdditions(ingredients []string) []string {
	counts := make(map[string]int)
	for _, ing := range ingredients {
		for base, pairs := range pairings {
			if !strings.Contains(ing, base) {
				continue
			}
			for _, pair := range pairs {
				if hasIngredient(ingredients, pair) {
					continue
				}
				counts[pair]++
			}
		}
	}

	suggestions := make([]string, 0, len(counts))
	for s := range counts {
		suggestions = append(suggestions, s)
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if counts[suggestions[i]] != counts[suggestions[j]] {
			return counts[suggestions[i]] > counts[suggestions[j]]
		}
		return suggestions[i] < suggestions[j]
	})
	if len(suggestions) > a.cfg.MaxSuggestions {
		suggestions = suggestions[:a.cfg.MaxSuggestions]
	}
	return suggestions
}

// MissingEssentials lists pantry staples absent from the ingredient set.
func MissingEssentials(ingredients []string) []string {
	var missing []string
	for _, essential := range pantryEssentials {
		if !hasIngredient(ingredients, essential) {
			missing = append(missing, essential)
		}
	}
	return missing
}

// substitutionsFor maps each ingredient with known swaps to its candidates.
// Substitutions that a dietary restriction rules out are filtered.
func substitutionsFor(ingredients []string, restrictions []models.DietaryRestriction) map[string][]string {
	vegan := false
	dairyFree := false
	for _, r := range restrictions {
		switch r {
		case models.DietVegan:
			vegan = true
		case models.DietDairyFree:
			dairyFree = true
		}
	}

	out := make(map[string][]string)
	for _, ing := range ingredients {
		for base, subs := range substitutionTable {
			if !strings.Contains(ing, base) {
				continue
			}
			kept := make([]string, 0, len(subs))
			for _, sub := range subs {
				if (vegan || dairyFree) && containsAny(sub, animalProductKeywords) {
					continue
				}
				kept = append(kept, sub)
			}
			if len(kept) > 0 {
				out[base] = kept
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// groupIngredients buckets ingredients into food groups; anything
// unrecognized lands in Other.
func groupIngredients(ingredients []string) map[string][]string {
	groups := make(map[string][]string)
	for _, ing := range ingredients {
		assigned := false
		for _, group := range foodGroups {
			if containsAny(ing, group.keywords) {
				groups[group.name] = append(groups[group.name], ing)
				assigned = true
				break
			}
		}
		if !assigned {
			groups["Other"] = append(groups["Other"], ing)
		}
	}
	if len(groups) == 0 {
		return nil
	}
	return groups
}

// cookingAdvice collects tips and technique suggestions keyed to the
// ingredients present.
func cookingAdvice(ingredients []string) (tips, techniques []string) {
	for _, ing := range ingredients {
		for key, advice := range techniqueTips {
			if strings.Contains(ing, key) {
				tips = append(tips, advice.tip)
				techniques = append(techniques, advice.technique)
			}
		}
	}
	sort.Strings(tips)
	sort.Strings(techniques)
	return tips, techniques
}

// flavorProfile derives a coarse flavor read from the matched categories.
func flavorProfile(categories []models.CategoryMatch) []string {
	profiles := map[string][]string{
		"Italian":       {"herbaceous", "savory"},
		"Mexican":       {"spicy", "bright"},
		"Asian":         {"umami", "aromatic"},
		"Mediterranean": {"fresh", "tangy"},
		"American":      {"hearty", "smoky"},
		"Dessert":       {"sweet", "rich"},
	}
	seen := make(map[string]bool)
	var out []string
	for _, cat := range categories {
		for _, flavor := range profiles[cat.Name] {
			if !seen[flavor] {
				seen[flavor] = true
				out = append(out, flavor)
			}
		}
	}
	return out
}

func hasIngredient(ingredients []string, needle string) bool {
	for _, ing := range ingredients {
		if strings.Contains(ing, needle) {
			return true
		}
	}
	return false
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
