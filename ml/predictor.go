package ml

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Aakash2700/sih-project/logger"
	"github.com/Aakash2700/sih-project/metrics"
)

// SafetyResult is the outcome of the binary water safety classifier.
type SafetyResult struct {
	IsSafe     bool    `json:"is_safe"`
	Confidence float64 `json:"confidence"`
	RiskLevel  string  `json:"risk_level"`
}

// DiseasePrediction is one ranked entry of the disease classifier output.
type DiseasePrediction struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// DiseaseResult is the outcome of the multiclass disease classifier.
type DiseaseResult struct {
	PredictedDisease string              `json:"predicted_disease"`
	Confidence       float64             `json:"confidence"`
	TopPredictions   []DiseasePrediction `json:"top_predictions"`
}

// featureCount is the width of every feature vector: temperature, pH,
// turbidity, TDS.
const featureCount = 4

// Predictor wraps the two trained classifiers. Artifacts are loaded lazily
// on first use and cached; any load or inference failure degrades to the
// deterministic rule ladder instead of surfacing an error.
type Predictor struct {
	dir string

	mu      sync.Mutex
	safety  *SafetyArtifact
	disease *DiseaseArtifact
}

// NewPredictor creates a predictor reading artifacts from dir.
func NewPredictor(dir string) *Predictor {
	return &Predictor{dir: dir}
}

// Reload drops the cached artifacts so the next prediction re-reads them.
// Call after retraining.
func (p *Predictor) Reload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.safety = nil
	p.disease = nil
}

func (p *Predictor) loadSafety() (*SafetyArtifact, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.safety != nil {
		return p.safety, nil
	}
	var a SafetyArtifact
	if err := loadArtifact(filepath.Join(p.dir, SafetyArtifactFile), &a); err != nil {
		return nil, err
	}
	if err := a.Scaler.validate(featureCount); err != nil {
		return nil, fmt.Errorf("safety artifact: %w", err)
	}
	p.safety = &a
	return p.safety, nil
}

func (p *Predictor) loadDisease() (*DiseaseArtifact, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disease != nil {
		return p.disease, nil
	}
	var a DiseaseArtifact
	if err := loadArtifact(filepath.Join(p.dir, DiseaseArtifactFile), &a); err != nil {
		return nil, err
	}
	if err := a.Scaler.validate(featureCount); err != nil {
		return nil, fmt.Errorf("disease artifact: %w", err)
	}
	if len(a.Labels) == 0 {
		return nil, fmt.Errorf("disease artifact has no label table")
	}
	p.disease = &a
	return p.disease, nil
}

// PredictSafety classifies a reading as safe or unsafe.
func (p *Predictor) PredictSafety(temperature, ph, turbidity, tds float64) SafetyResult {
	a, err := p.loadSafety()
	if err != nil {
		log := logger.WithComponent("ml")
		log.Debug().Err(err).Msg("safety model unavailable, using fallback")
		metrics.PredictionsTotal.WithLabelValues("safety", "fallback").Inc()
		return FallbackSafety(temperature, ph, turbidity, tds)
	}

	scaled := a.Scaler.Transform([]float64{temperature, ph, turbidity, tds})
	votes := a.Forest.Vote(scaled)
	if len(votes) == 0 {
		metrics.PredictionsTotal.WithLabelValues("safety", "fallback").Inc()
		return FallbackSafety(temperature, ph, turbidity, tds)
	}

	cls, confidence := argmax(votes)
	isSafe := cls == 0
	risk := "High"
	if isSafe {
		risk = "Low"
	}
	metrics.PredictionsTotal.WithLabelValues("safety", "model").Inc()
	return SafetyResult{IsSafe: isSafe, Confidence: confidence, RiskLevel: risk}
}

// PredictDisease classifies a reading into one of the seven disease labels
// and returns the three most probable classes.
func (p *Predictor) PredictDisease(temperature, ph, turbidity, tds float64) DiseaseResult {
	a, err := p.loadDisease()
	if err != nil {
		log := logger.WithComponent("ml")
		log.Debug().Err(err).Msg("disease model unavailable, using fallback")
		metrics.PredictionsTotal.WithLabelValues("disease", "fallback").Inc()
		return FallbackDisease(temperature, ph, turbidity, tds)
	}

	scaled := a.Scaler.Transform([]float64{temperature, ph, turbidity, tds})
	votes := a.Forest.Vote(scaled)
	if len(votes) == 0 || len(votes) > len(a.Labels) {
		metrics.PredictionsTotal.WithLabelValues("disease", "fallback").Inc()
		return FallbackDisease(temperature, ph, turbidity, tds)
	}

	ranked := make([]DiseasePrediction, 0, len(votes))
	for i, prob := range votes {
		ranked = append(ranked, DiseasePrediction{Disease: a.Labels[i], Probability: prob})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Probability > ranked[j].Probability
	})
	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	metrics.PredictionsTotal.WithLabelValues("disease", "model").Inc()
	return DiseaseResult{
		PredictedDisease: ranked[0].Disease,
		Confidence:       ranked[0].Probability,
		TopPredictions:   top,
	}
}

func argmax(v []float64) (int, float64) {
	best, bestVal := 0, v[0]
	for i, x := range v {
		if x > bestVal {
			best, bestVal = i, x
		}
	}
	return best, bestVal
}
