package controllers

import (
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Aakash2700/sih-project/logger"
	"github.com/Aakash2700/sih-project/models"
	"github.com/Aakash2700/sih-project/utils"
)

type seedSensor struct {
	id          string
	village     string
	lat, lng    float64
	temperature float64
	ph          float64
	turbidity   float64
	tds         float64
}

var sampleSensors = []seedSensor{
	{"SEN-001", "Guwahati", 26.1445, 91.7362, 24.5, 7.2, 3.1, 250},
	{"SEN-002", "Shillong", 25.5788, 91.8933, 18.3, 6.9, 5.0, 320},
	{"SEN-003", "Silchar", 24.8333, 92.7789, 27.1, 8.7, 12.0, 520},
	{"SEN-004", "Aizawl", 23.7271, 92.7176, 21.0, 7.5, 2.0, 180},
	{"SEN-005", "Imphal", 24.8170, 93.9368, 22.4, 7.0, 4.0, 260},
	{"SEN-006", "Kohima", 25.6751, 94.1086, 19.8, 6.8, 3.5, 240},
	{"SEN-007", "Agartala", 23.8315, 91.2868, 28.2, 7.4, 6.0, 300},
	{"SEN-008", "Itanagar", 27.0844, 93.6053, 17.6, 7.1, 2.8, 200},
	{"SEN-009", "Gangtok", 27.3389, 88.6065, 15.2, 7.6, 1.8, 160},
	{"SEN-010", "VIT-AP Vijayawada", 16.4937, 80.5, 29.0, 7.3, 4.5, 310},
	{"SEN-011", "Dispur", 26.14, 91.77, 25.0, 6.5, 8.0, 400},
	{"SEN-012", "Jorhat", 26.75, 94.22, 26.5, 7.8, 9.5, 450},
	{"SEN-013", "Dibrugarh", 27.47, 94.9, 27.0, 8.2, 11.0, 550},
	{"SEN-014", "Tinsukia", 27.5, 95.37, 28.0, 6.0, 15.0, 600},
	{"SEN-015", "Tezpur", 26.65, 92.79, 29.5, 9.0, 7.0, 350},
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// SeedIfEmpty populates sample sensors, history, alerts, a default admin
// account and a few health reports when the database is empty. Best-effort:
// failures are logged and never abort startup.
func SeedIfEmpty(db *gorm.DB) {
	log := logger.WithComponent("seed")

	var sensorCount int64
	if err := db.Model(&models.Sensor{}).Count(&sensorCount).Error; err != nil {
		log.Warn().Err(err).Msg("seed skipped: count failed")
		return
	}
	if sensorCount > 0 {
		seedAdmin(db)
		return
	}

	for i, s := range sampleSensors {
		dayOffset := i / 2 // two sensors per day
		now := time.Now().UTC().AddDate(0, 0, -dayOffset)

		sensor := models.Sensor{
			ID: s.id, Village: s.village, Lat: s.lat, Lng: s.lng,
			Temperature: s.temperature, PH: s.ph, Turbidity: s.turbidity, TDS: s.tds,
			Status: "online", LastUpdated: now,
		}
		if err := db.Save(&sensor).Error; err != nil {
			log.Warn().Err(err).Str("sensor", s.id).Msg("seed sensor failed")
			continue
		}

		for j := 0; j < 10; j++ {
			jitter := float64(j%3) * 0.1
			entry := models.SensorHistory{
				SensorID:    s.id,
				Village:     s.village,
				Temperature: round(s.temperature+jitter, 2),
				PH:          round(s.ph+(0.05-jitter/10), 2),
				Turbidity:   round(s.turbidity+jitter, 2),
				TDS:         round(s.tds+jitter*10, 1),
				CreatedAt:   now.Add(-time.Duration(10-j) * time.Minute),
			}
			if err := db.Create(&entry).Error; err != nil {
				log.Warn().Err(err).Str("sensor", s.id).Msg("seed history failed")
			}
		}

		if level := utils.EvaluateLevel(s.ph, s.turbidity, s.tds); level != "" {
			alert := models.Alert{
				ID:        uuid.NewString(),
				SensorID:  s.id,
				Message:   utils.AlertMessage(s.village, s.ph, s.turbidity, s.tds),
				Level:     level,
				Timestamp: now,
			}
			if err := db.Create(&alert).Error; err != nil {
				log.Warn().Err(err).Str("sensor", s.id).Msg("seed alert failed")
			}
		}
	}

	seedAdmin(db)

	var reportCount int64
	db.Model(&models.HealthReport{}).Count(&reportCount)
	if reportCount == 0 {
		now := time.Now().UTC()
		reports := []models.HealthReport{
			{ID: "HR-1", Village: "Guwahati", Symptoms: []string{"diarrhea", "nausea"}, CreatedAt: now},
			{ID: "HR-2", Village: "Silchar", Symptoms: []string{"fever"}, CreatedAt: now},
			{ID: "HR-3", Village: "Aizawl", Symptoms: []string{"stomach pain"}, CreatedAt: now},
		}
		for _, r := range reports {
			if err := db.Save(&r).Error; err != nil {
				log.Warn().Err(err).Str("report", r.ID).Msg("seed health report failed")
			}
		}
	}

	log.Info().Int("sensors", len(sampleSensors)).Msg("sample data seeded")
}

func seedAdmin(db *gorm.DB) {
	log := logger.WithComponent("seed")

	var count int64
	db.Model(&models.User{}).Where("username = ?", "aakash").Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("aakash@1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("seed admin hash failed")
		return
	}
	admin := models.User{Username: "aakash", Password: string(hashed), Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		log.Warn().Err(err).Msg("seed admin failed")
	}
}
