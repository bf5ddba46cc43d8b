package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/recipegenie/core/pkg/models"
)

// ShoppingListBuilder turns recipe batches and pantry contents into a
// shopping list.
type ShoppingListBuilder struct {
	pre    *Preprocessor
	logger *logrus.Logger
}

func NewShoppingListBuilder(pre *Preprocessor, logger *logrus.Logger) *ShoppingListBuilder {
	return &ShoppingListBuilder{pre: pre, logger: logger}
}

// Build collects every ingredient the recipes need that the pantry does not
// cover, deduplicated and categorized. With no recipes, the pantry
// ingredients themselves become the list (the "shop for what I planned to
// cook with" case). aiEnhanced records whether the list came out of an
// AI-enhanced flow.
func (b *ShoppingListBuilder) Build(recipes []models.RecipeRecord, pantry []string, aiEnhanced bool) *models.ShoppingListResult {
	normalizedPantry := b.pre.PreprocessIngredients(pantry)

	var needed []string
	seen := make(map[string]bool)
	add := func(ing string) {
		if ing == "" || seen[ing] {
			return
		}
		seen[ing] = true
		needed = append(needed, ing)
	}

	if len(recipes) == 0 {
		for _, ing := range normalizedPantry {
			add(ing)
		}
	} else {
		for _, rec := range recipes {
			ingredients := rec.NormalizedIngredients
			if len(ingredients) == 0 {
				ingredients = b.pre.PreprocessIngredients(rec.Ingredients)
			}
			for _, ing := range ingredients {
				if hasIngredient(normalizedPantry, ing) {
					continue
				}
				add(ing)
			}
		}
	}

	if len(needed) == 0 {
		return &models.ShoppingListResult{
			Success:      false,
			Error:        "no ingredients to build a shopping list from",
			ShoppingList: []string{},
			RecipeCount:  len(recipes),
			AIEnhanced:   aiEnhanced,
		}
	}

	sort.Strings(needed)

	b.logger.WithFields(logrus.Fields{
		"items":   len(needed),
		"recipes": len(recipes),
	}).Debug("built shopping list")

	return &models.ShoppingListResult{
		Success:         true,
		ShoppingList:    needed,
		CategorizedList: groupIngredients(needed),
		RecipeCount:     len(recipes),
		AIEnhanced:      aiEnhanced,
	}
}
