package ml

import "math/rand"

// DiseaseLabels is the closed label set for the disease classifier, in
// class-index order.
var DiseaseLabels = []string{
	"No Disease",
	"Gastroenteritis",
	"Cholera",
	"Typhoid",
	"Hepatitis A",
	"Dysentery",
	"Skin Infection",
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// drawReading samples one synthetic feature vector from the parameterized
// distributions: temperature N(25,5), pH N(7,0.8), turbidity Exp(mean 2),
// TDS N(300,100).
func drawReading(rng *rand.Rand) (temperature, ph, turbidity, tds float64) {
	temperature = rng.NormFloat64()*5 + 25
	ph = rng.NormFloat64()*0.8 + 7.0
	turbidity = rng.ExpFloat64() * 2
	tds = rng.NormFloat64()*100 + 300
	return
}

// GenerateSafetyData produces n labeled samples for the binary safety
// classifier. Class 0 is safe, class 1 is unsafe. Labels follow WHO-style
// guideline thresholds with measurement noise injected after labeling.
func GenerateSafetyData(seed int64, n int) (x [][]float64, y []int) {
	rng := rand.New(rand.NewSource(seed))
	x = make([][]float64, 0, n)
	y = make([]int, 0, n)

	for i := 0; i < n; i++ {
		temperature, ph, turbidity, tds := drawReading(rng)

		unsafe := ph < 6.5 || ph > 8.5 ||
			turbidity > 10 ||
			tds > 1000 ||
			temperature < 10 || temperature > 35

		temperature = clamp(temperature+rng.NormFloat64()*0.5, 5, 40)
		ph = clamp(ph+rng.NormFloat64()*0.1, 4, 10)
		turbidity = clamp(turbidity+rng.NormFloat64()*0.2, 0, 50)
		tds = clamp(tds+rng.NormFloat64()*10, 50, 2000)

		cls := 0
		if unsafe {
			cls = 1
		}
		x = append(x, []float64{temperature, ph, turbidity, tds})
		y = append(y, cls)
	}
	return x, y
}

// diseaseIndex applies the rule ladder used both for labeling the synthetic
// disease set and as the inference fallback. Order matters: first match wins.
func diseaseIndex(temperature, ph, turbidity, tds float64) int {
	switch {
	case turbidity > 8 && ph < 6.5:
		return 1 // Gastroenteritis
	case turbidity > 15 && temperature > 30:
		return 2 // Cholera
	case tds > 800 && temperature > 28:
		return 3 // Typhoid
	case ph < 6.0 && temperature > 32:
		return 4 // Hepatitis A
	case turbidity > 10 && tds > 600:
		return 5 // Dysentery
	case ph < 5.5 || ph > 9.0:
		return 6 // Skin Infection
	default:
		return 0 // No Disease
	}
}

// GenerateDiseaseData produces n labeled samples for the multiclass disease
// classifier. Ten percent of labels are randomized to a non-zero class to
// keep the model from collapsing onto the rules exactly.
func GenerateDiseaseData(seed int64, n int) (x [][]float64, y []int) {
	rng := rand.New(rand.NewSource(seed))
	x = make([][]float64, 0, n)
	y = make([]int, 0, n)

	for i := 0; i < n; i++ {
		temperature, ph, turbidity, tds := drawReading(rng)

		cls := diseaseIndex(temperature, ph, turbidity, tds)
		if rng.Float64() < 0.1 {
			cls = 1 + rng.Intn(len(DiseaseLabels)-1)
		}

		x = append(x, []float64{temperature, ph, turbidity, tds})
		y = append(y, cls)
	}
	return x, y
}
