package utils

import (
	"fmt"
	"time"

	"github.com/Aakash2700/sih-project/models"
	"github.com/google/uuid"
)

// Alert severity levels.
const (
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// EvaluateLevel maps the four water quality measurements to an alert level.
// Danger thresholds are checked first and win over warning thresholds.
// Returns an empty string when the reading is within safe bounds.
func EvaluateLevel(ph, turbidity, tds float64) string {
	if ph < 6.5 || ph > 8.5 || turbidity > 10 || tds > 500 {
		return LevelDanger
	}
	if (turbidity > 5 && turbidity <= 10) || (tds > 300 && tds <= 500) {
		return LevelWarning
	}
	return ""
}

// AlertMessage renders the human-readable alert text for a reading.
func AlertMessage(village string, ph, turbidity, tds float64) string {
	return fmt.Sprintf("Water issue detected in %v (pH=%v, Turbidity=%v, TDS=%v)",
		village, ph, turbidity, tds)
}

// EvaluateReading runs the threshold rules against a reading and returns the
// alert to persist, or nil when no threshold is crossed.
func EvaluateReading(r models.SensorReading, now time.Time) *models.Alert {
	level := EvaluateLevel(r.PH, r.Turbidity, r.TDS)
	if level == "" {
		return nil
	}
	return &models.Alert{
		ID:           uuid.NewString(),
		SensorID:     r.ID,
		Message:      AlertMessage(r.Village, r.PH, r.Turbidity, r.TDS),
		Level:        level,
		Timestamp:    now,
		Acknowledged: false,
	}
}
