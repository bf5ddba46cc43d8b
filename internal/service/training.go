package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/recipegenie/core/config"
	"github.com/recipegenie/core/pkg/models"
)

// trainingMetadata is the on-disk bookkeeping of the training pipeline.
type trainingMetadata struct {
	LastTrained     time.Time `json:"last_trained"`
	TrainingSamples int       `json:"training_samples"`
	ModelVersion    string    `json:"model_version"`
}

// Trainer gates and records model training passes. The actual model fitting
// runs in the external training process; this side validates the feed,
// decides whether a pass is due and keeps the metadata that decision needs.
type Trainer struct {
	cfg    *config.TrainingConfig
	logger *logrus.Logger

	mu   sync.Mutex
	meta *trainingMetadata
}

func NewTrainer(cfg *config.TrainingConfig, logger *logrus.Logger) *Trainer {
	return &Trainer{cfg: cfg, logger: logger}
}

// Train ingests a validated training request. Unless forced, a pass is
// skipped when the previous one ran within the configured interval.
func (t *Trainer) Train(req *models.TrainRequest) *models.TrainResult {
	start := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	meta, err := t.loadMetadata()
	if err != nil {
		t.logger.WithError(err).Warn("could not load training metadata, starting fresh")
		meta = &trainingMetadata{}
	}

	if !req.ForceRetrain && !meta.LastTrained.IsZero() &&
		time.Since(meta.LastTrained) < t.cfg.MinRetrainInterval {
		t.logger.WithField("last_trained", meta.LastTrained).Info("skipping training, models recently updated")
		last := meta.LastTrained
		return &models.TrainResult{
			Status:      models.TrainSkipped,
			LastTrained: &last,
			Message:     "models were recently trained",
		}
	}

	now := time.Now()
	meta.LastTrained = now
	meta.TrainingSamples = len(req.TrainingData)
	meta.ModelVersion = now.Format("200601021504")

	if err := t.saveMetadata(meta); err != nil {
		t.logger.WithError(err).Error("failed to persist training metadata")
		return &models.TrainResult{
			Status:  models.TrainFailed,
			Message: fmt.Sprintf("failed to persist training metadata: %v", err),
		}
	}
	t.meta = meta

	elapsed := time.Since(start)
	t.logger.WithFields(logrus.Fields{
		"samples":       meta.TrainingSamples,
		"model_version": meta.ModelVersion,
		"elapsed_ms":    elapsed.Milliseconds(),
	}).Info("training pass recorded")

	last := meta.LastTrained
	return &models.TrainResult{
		Status:              models.TrainSucceeded,
		TrainingTimeSeconds: elapsed.Seconds(),
		SamplesProcessed:    meta.TrainingSamples,
		LastTrained:         &last,
		ModelVersion:        meta.ModelVersion,
	}
}

func (t *Trainer) loadMetadata() (*trainingMetadata, error) {
	if t.meta != nil {
		return t.meta, nil
	}
	data, err := os.ReadFile(t.cfg.MetadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &trainingMetadata{}, nil
		}
		return nil, err
	}
	var meta trainingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("corrupt training metadata: %w", err)
	}
	return &meta, nil
}

func (t *Trainer) saveMetadata(meta *trainingMetadata) error {
	if err := os.MkdirAll(filepath.Dir(t.cfg.MetadataPath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.cfg.MetadataPath, data, 0o644)
}
