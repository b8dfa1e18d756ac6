package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	randomforest "github.com/malaschitz/randomForest"
)

// Artifact file names, relative to the model directory.
const (
	SafetyArtifactFile  = "water_safety.gob"
	DiseaseArtifactFile = "disease.gob"
)

// SafetyArtifact is the persisted output of the safety trainer.
type SafetyArtifact struct {
	Forest randomforest.Forest
	Scaler Scaler
}

// DiseaseArtifact is the persisted output of the disease trainer.
type DiseaseArtifact struct {
	Forest randomforest.Forest
	Scaler Scaler
	Labels []string
}

// SaveArtifact gob-encodes an artifact to path, creating parent directories.
func SaveArtifact(path string, artifact interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(artifact); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return nil
}

func loadArtifact(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("decode artifact: %w", err)
	}
	return nil
}
