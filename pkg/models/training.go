package models

import (
	"time"

	"github.com/google/uuid"
)

// TrainingRecord is one append-only interaction sample handed to the model
// training pipeline. The core writes these out and never reads them back.
type TrainingRecord struct {
	UserID            uuid.UUID `json:"user_id" validate:"required"`
	RecipeID          uuid.UUID `json:"recipe_id" validate:"required"`
	RecipeTitle       string    `json:"recipe_title,omitempty"`
	RecipeDescription string    `json:"recipe_description,omitempty"`
	Cuisine           string    `json:"cuisine,omitempty"`
	Ingredients       []string  `json:"ingredients,omitempty"`
	UserRating        *float64  `json:"user_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Favorite          *bool     `json:"favorite,omitempty"`
	Timestamp         time.Time `json:"timestamp" validate:"required"`
}

// TrainRequest asks the training pipeline to ingest new samples and
// refresh the model.
type TrainRequest struct {
	TrainingData []TrainingRecord `json:"training_data" validate:"required,min=1,dive"`
	ForceRetrain bool             `json:"force_retrain"`
}

// TrainStatus is the closed set of training outcomes.
type TrainStatus string

const (
	TrainSucceeded TrainStatus = "success"
	TrainSkipped   TrainStatus = "skipped"
	TrainFailed    TrainStatus = "error"
)

// TrainResult reports the outcome of one training pass.
type TrainResult struct {
	Status              TrainStatus `json:"status"`
	TrainingTimeSeconds float64     `json:"training_time_seconds,omitempty"`
	SamplesProcessed    int         `json:"samples_processed,omitempty"`
	LastTrained         *time.Time  `json:"last_trained,omitempty"`
	ModelVersion        string      `json:"model_version,omitempty"`
	Message             string      `json:"message,omitempty"`
}
