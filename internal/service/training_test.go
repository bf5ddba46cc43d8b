package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipegenie/core/config"
	"github.com/recipegenie/core/pkg/models"
)

func testTrainRequest(samples int) *models.TrainRequest {
	req := &models.TrainRequest{}
	for i := 0; i < samples; i++ {
		req.TrainingData = append(req.TrainingData, models.TrainingRecord{
			UserID:    uuid.New(),
			RecipeID:  uuid.New(),
			Timestamp: time.Now(),
		})
	}
	return req
}

func TestTrainFirstPassSucceeds(t *testing.T) {
	cfg := &config.TrainingConfig{
		MinRetrainInterval: 24 * time.Hour,
		MetadataPath:       filepath.Join(t.TempDir(), "models", "metadata.json"),
	}
	trainer := NewTrainer(cfg, testLogger())

	result := trainer.Train(testTrainRequest(3))
	require.Equal(t, models.TrainSucceeded, result.Status)
	assert.Equal(t, 3, result.SamplesProcessed)
	require.NotNil(t, result.LastTrained)
	assert.False(t, result.LastTrained.IsZero())
	assert.NotEmpty(t, result.ModelVersion)

	data, err := os.ReadFile(cfg.MetadataPath)
	require.NoError(t, err)
	var meta trainingMetadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, 3, meta.TrainingSamples)
	assert.Equal(t, result.ModelVersion, meta.ModelVersion)
}

func TestTrainSkipsWithinInterval(t *testing.T) {
	cfg := &config.TrainingConfig{
		MinRetrainInterval: 24 * time.Hour,
		MetadataPath:       filepath.Join(t.TempDir(), "metadata.json"),
	}
	trainer := NewTrainer(cfg, testLogger())

	first := trainer.Train(testTrainRequest(1))
	require.Equal(t, models.TrainSucceeded, first.Status)

	second := trainer.Train(testTrainRequest(1))
	assert.Equal(t, models.TrainSkipped, second.Status)
	assert.Equal(t, "models were recently trained", second.Message)
	require.NotNil(t, second.LastTrained)
	assert.Equal(t, first.LastTrained.Unix(), second.LastTrained.Unix())
}

func TestTrainForceBypassesGate(t *testing.T) {
	cfg := &config.TrainingConfig{
		MinRetrainInterval: 24 * time.Hour,
		MetadataPath:       filepath.Join(t.TempDir(), "metadata.json"),
	}
	trainer := NewTrainer(cfg, testLogger())

	require.Equal(t, models.TrainSucceeded, trainer.Train(testTrainRequest(1)).Status)

	forced := testTrainRequest(2)
	forced.ForceRetrain = true
	result := trainer.Train(forced)
	assert.Equal(t, models.TrainSucceeded, result.Status)
	assert.Equal(t, 2, result.SamplesProcessed)
}

func TestTrainReadsMetadataFromDisk(t *testing.T) {
	cfg := &config.TrainingConfig{
		MinRetrainInterval: 24 * time.Hour,
		MetadataPath:       filepath.Join(t.TempDir(), "metadata.json"),
	}

	first := NewTrainer(cfg, testLogger())
	require.Equal(t, models.TrainSucceeded, first.Train(testTrainRequest(1)).Status)

	// A fresh trainer against the same path picks up the earlier pass.
	second := NewTrainer(cfg, testLogger())
	assert.Equal(t, models.TrainSkipped, second.Train(testTrainRequest(1)).Status)
}

func TestTrainPersistFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg := &config.TrainingConfig{
		MinRetrainInterval: 24 * time.Hour,
		// The parent of the metadata path is a regular file, so the
		// directory cannot be created.
		MetadataPath: filepath.Join(blocker, "metadata.json"),
	}
	trainer := NewTrainer(cfg, testLogger())

	result := trainer.Train(testTrainRequest(1))
	assert.Equal(t, models.TrainFailed, result.Status)
	assert.Contains(t, result.Message, "failed to persist training metadata")
}
