package config

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is internally
// consistent.
func ValidateConfig(cfg *Config) error {
	var errors []string

	r := cfg.Recommender
	for field, w := range map[string]float64{
		"recommender.ingredient_match_weight": r.IngredientMatchWeight,
		"recommender.user_preference_weight":  r.UserPreferenceWeight,
		"recommender.popularity_weight":       r.PopularityWeight,
		"recommender.complexity_weight":       r.ComplexityWeight,
	} {
		if w < 0 || w > 1 {
			errors = append(errors, fmt.Sprintf("%s must be between 0 and 1, got %v", field, w))
		}
	}
	sum := r.IngredientMatchWeight + r.UserPreferenceWeight + r.PopularityWeight + r.ComplexityWeight
	if math.Abs(sum-1.0) > 0.001 {
		errors = append(errors, fmt.Sprintf("recommender weights must sum to 1, got %v", sum))
	}
	if r.MatchBoostThreshold < 0 || r.MatchBoostThreshold > 1 {
		errors = append(errors, fmt.Sprintf("recommender.match_boost_threshold must be between 0 and 1, got %v", r.MatchBoostThreshold))
	}
	if r.MatchBoostFactor < 1 {
		errors = append(errors, fmt.Sprintf("recommender.match_boost_factor must be at least 1, got %v", r.MatchBoostFactor))
	}

	if cfg.Analysis.CategoryThreshold < 0 || cfg.Analysis.CategoryThreshold > 1 {
		errors = append(errors, fmt.Sprintf("analysis.category_threshold must be between 0 and 1, got %v", cfg.Analysis.CategoryThreshold))
	}
	if cfg.Analysis.MaxSuggestions <= 0 {
		errors = append(errors, fmt.Sprintf("analysis.max_suggestions must be positive, got %d", cfg.Analysis.MaxSuggestions))
	}

	if cfg.Pagination.DefaultPageSize <= 0 {
		errors = append(errors, fmt.Sprintf("pagination.default_page_size must be positive, got %d", cfg.Pagination.DefaultPageSize))
	}
	if cfg.Pagination.MaxPageSize < cfg.Pagination.DefaultPageSize {
		errors = append(errors, fmt.Sprintf("pagination.max_page_size must be at least the default page size, got %d", cfg.Pagination.MaxPageSize))
	}

	if cfg.Training.MinRetrainInterval < 0 {
		errors = append(errors, fmt.Sprintf("training.min_retrain_interval must not be negative, got %v", cfg.Training.MinRetrainInterval))
	}
	if cfg.Training.MetadataPath == "" {
		errors = append(errors, "training.metadata_path must be set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
