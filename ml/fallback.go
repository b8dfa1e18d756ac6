package ml

// Fixed confidences reported by the rule-based fallbacks.
const (
	fallbackSafetyConfidence  = 0.85
	fallbackDiseaseConfidence = 0.75
)

// FallbackSafety applies the same danger thresholds as the alert evaluator
// when the trained safety model cannot be used.
func FallbackSafety(temperature, ph, turbidity, tds float64) SafetyResult {
	unsafe := ph < 6.5 || ph > 8.5 || turbidity > 10 || tds > 500
	risk := "Low"
	if unsafe {
		risk = "High"
	}
	return SafetyResult{
		IsSafe:     !unsafe,
		Confidence: fallbackSafetyConfidence,
		RiskLevel:  risk,
	}
}

// FallbackDisease walks the ordered rule ladder when the trained disease
// model cannot be used. The top-three list is padded with fixed entries.
func FallbackDisease(temperature, ph, turbidity, tds float64) DiseaseResult {
	disease := DiseaseLabels[diseaseIndex(temperature, ph, turbidity, tds)]
	return DiseaseResult{
		PredictedDisease: disease,
		Confidence:       fallbackDiseaseConfidence,
		TopPredictions: []DiseasePrediction{
			{Disease: disease, Probability: 0.75},
			{Disease: "No Disease", Probability: 0.15},
			{Disease: "Gastroenteritis", Probability: 0.10},
		},
	}
}
