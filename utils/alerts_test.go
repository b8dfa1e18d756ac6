package utils

import (
	"testing"
	"time"

	"github.com/Aakash2700/sih-project/models"
)

func TestEvaluateLevel(t *testing.T) {
	tests := []struct {
		name      string
		ph        float64
		turbidity float64
		tds       float64
		want      string
	}{
		{"all clear", 7.0, 2.0, 200, ""},
		{"low ph danger", 6.4, 2.0, 200, LevelDanger},
		{"high ph danger", 8.6, 2.0, 200, LevelDanger},
		{"ph boundary low is safe", 6.5, 2.0, 200, ""},
		{"ph boundary high is safe", 8.5, 2.0, 200, ""},
		{"turbidity exactly 5 no alert", 7.0, 5.0, 200, ""},
		{"turbidity just above 5 warns", 7.0, 5.01, 200, LevelWarning},
		{"turbidity exactly 10 warns", 7.0, 10.0, 200, LevelWarning},
		{"turbidity just above 10 danger", 7.0, 10.01, 200, LevelDanger},
		{"tds exactly 300 no alert", 7.0, 2.0, 300, ""},
		{"tds just above 300 warns", 7.0, 2.0, 300.5, LevelWarning},
		{"tds exactly 500 warns", 7.0, 2.0, 500, LevelWarning},
		{"tds above 500 danger", 7.0, 2.0, 500.5, LevelDanger},
		{"danger beats warning", 9.0, 20.0, 400, LevelDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateLevel(tt.ph, tt.turbidity, tt.tds)
			if got != tt.want {
				t.Errorf("EvaluateLevel(%v, %v, %v) = %q, want %q",
					tt.ph, tt.turbidity, tt.tds, got, tt.want)
			}
		})
	}
}

func TestEvaluateLevelDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := EvaluateLevel(9.0, 20.0, 400); got != LevelDanger {
			t.Fatalf("run %d: got %q, want %q", i, got, LevelDanger)
		}
	}
}

func TestEvaluateReading(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reading := models.SensorReading{
		ID:          "SEN-042",
		Village:     "Tezpur",
		Temperature: 25,
		PH:          9.0,
		Turbidity:   7.0,
		TDS:         350,
	}

	alert := EvaluateReading(reading, now)
	if alert == nil {
		t.Fatal("expected an alert")
	}
	if alert.Level != LevelDanger {
		t.Errorf("level = %q, want %q", alert.Level, LevelDanger)
	}
	if alert.SensorID != "SEN-042" {
		t.Errorf("sensor id = %q, want SEN-042", alert.SensorID)
	}
	if !alert.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", alert.Timestamp, now)
	}
	if alert.Acknowledged {
		t.Error("new alert must not be acknowledged")
	}
	if alert.ID == "" {
		t.Error("alert id must be set")
	}

	want := "Water issue detected in Tezpur (pH=9, Turbidity=7, TDS=350)"
	if alert.Message != want {
		t.Errorf("message = %q, want %q", alert.Message, want)
	}
}

func TestEvaluateReadingSafe(t *testing.T) {
	reading := models.SensorReading{ID: "SEN-001", Village: "Guwahati", PH: 7.2, Turbidity: 3.1, TDS: 250}
	if alert := EvaluateReading(reading, time.Now()); alert != nil {
		t.Fatalf("expected no alert, got level %q", alert.Level)
	}
}

func TestDebouncePolicy(t *testing.T) {
	policy := NewDebouncePolicy([]string{"SEN-ESP32-001"}, time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if !policy.Enabled("SEN-ESP32-001") {
		t.Error("enrolled source should be enabled")
	}
	if policy.Enabled("SEN-001") {
		t.Error("unenrolled source should not be enabled")
	}

	tests := []struct {
		name      string
		sensorID  string
		lastAlert time.Time
		want      bool
	}{
		{"no prior alert", "SEN-ESP32-001", time.Time{}, false},
		{"recent alert suppressed", "SEN-ESP32-001", now.Add(-30 * time.Second), true},
		{"old alert passes", "SEN-ESP32-001", now.Add(-61 * time.Second), false},
		{"exactly at window passes", "SEN-ESP32-001", now.Add(-time.Minute), false},
		{"unenrolled never suppressed", "SEN-001", now.Add(-time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Suppressed(tt.sensorID, tt.lastAlert, now); got != tt.want {
				t.Errorf("Suppressed(%q, %v) = %v, want %v", tt.sensorID, tt.lastAlert, got, tt.want)
			}
		})
	}
}
