package ml

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
)

// TrainSafety fits the binary safety classifier on synthetic data.
func TrainSafety(seed int64, samples, trees int) (*SafetyArtifact, error) {
	x, y := GenerateSafetyData(seed, samples)
	if len(x) == 0 {
		return nil, fmt.Errorf("no training data generated")
	}

	scaler := FitScaler(x)
	forest := randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: scaler.TransformAll(x), Class: y}
	forest.Train(trees)

	return &SafetyArtifact{Forest: forest, Scaler: *scaler}, nil
}

// TrainDisease fits the multiclass disease classifier on synthetic data.
func TrainDisease(seed int64, samples, trees int) (*DiseaseArtifact, error) {
	x, y := GenerateDiseaseData(seed, samples)
	if len(x) == 0 {
		return nil, fmt.Errorf("no training data generated")
	}

	scaler := FitScaler(x)
	forest := randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: scaler.TransformAll(x), Class: y}
	forest.Train(trees)

	return &DiseaseArtifact{Forest: forest, Scaler: *scaler, Labels: DiseaseLabels}, nil
}
