package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the enhancement core.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Recommender RecommenderConfig `mapstructure:"recommender"`
	Analysis    AnalysisConfig    `mapstructure:"analysis"`
	Pagination  PaginationConfig  `mapstructure:"pagination"`
	Training    TrainingConfig    `mapstructure:"training"`
}

// LoggingConfig controls service logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RecommenderConfig carries the feature weights of the enhancement scorer.
// The four weights are expected to sum to 1.
type RecommenderConfig struct {
	IngredientMatchWeight float64 `mapstructure:"ingredient_match_weight"`
	UserPreferenceWeight  float64 `mapstructure:"user_preference_weight"`
	PopularityWeight      float64 `mapstructure:"popularity_weight"`
	ComplexityWeight      float64 `mapstructure:"complexity_weight"`
	// MatchBoostThreshold is the ingredient match ratio past which the
	// score gets boosted.
	MatchBoostThreshold float64 `mapstructure:"match_boost_threshold"`
	MatchBoostFactor    float64 `mapstructure:"match_boost_factor"`
}

// AnalysisConfig tunes ingredient analysis output.
type AnalysisConfig struct {
	// CategoryThreshold is the minimum match score for a category to be
	// reported as suitable.
	CategoryThreshold float64 `mapstructure:"category_threshold"`
	MaxSuggestions    int     `mapstructure:"max_suggestions"`
}

// PaginationConfig bounds search result paging.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
}

// TrainingConfig controls the training gate and metadata persistence.
type TrainingConfig struct {
	// MinRetrainInterval is how recently a training pass may have run
	// before a new unforced request is skipped.
	MinRetrainInterval time.Duration `mapstructure:"min_retrain_interval"`
	MetadataPath       string        `mapstructure:"metadata_path"`
}

// LoadConfig reads configuration from an optional config file and the
// RECIPEGENIE_* environment, falling back to defaults, and validates the
// result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("RECIPEGENIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("recommender.ingredient_match_weight", 0.4)
	v.SetDefault("recommender.user_preference_weight", 0.3)
	v.SetDefault("recommender.popularity_weight", 0.2)
	v.SetDefault("recommender.complexity_weight", 0.1)
	v.SetDefault("recommender.match_boost_threshold", 0.8)
	v.SetDefault("recommender.match_boost_factor", 1.2)

	v.SetDefault("analysis.category_threshold", 0.15)
	v.SetDefault("analysis.max_suggestions", 5)

	v.SetDefault("pagination.default_page_size", 20)
	v.SetDefault("pagination.max_page_size", 100)

	v.SetDefault("training.min_retrain_interval", 24*time.Hour)
	v.SetDefault("training.metadata_path", "data/models/metadata.json")
}
