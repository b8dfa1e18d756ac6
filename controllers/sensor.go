package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/Aakash2700/sih-project/metrics"
	"github.com/Aakash2700/sih-project/middlewares"
	"github.com/Aakash2700/sih-project/models"
	"github.com/Aakash2700/sih-project/utils"
)

const historyLimit = 20

// ReceiveSensorData ingests a reading on the authenticated endpoint.
func (ctl *Controller) ReceiveSensorData(c *gin.Context) {
	ctl.ingestReading(c, "auth")
}

// ReceivePublicSensorData ingests a reading without authentication. Field
// devices post here directly.
func (ctl *Controller) ReceivePublicSensorData(c *gin.Context) {
	ctl.ingestReading(c, "public")
}

func (ctl *Controller) ingestReading(c *gin.Context, source string) {
	var reading models.SensorReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	now := time.Now().UTC()
	sensor := models.Sensor{
		ID:           reading.ID,
		Village:      reading.Village,
		Lat:          reading.Lat,
		Lng:          reading.Lng,
		Temperature:  reading.Temperature,
		PH:           reading.PH,
		Turbidity:    reading.Turbidity,
		TDS:          reading.TDS,
		Status:       "online",
		LastUpdated:  now,
		Name:         reading.Name,
		Type:         reading.Type,
		Manufacturer: reading.Manufacturer,
	}

	if err := ctl.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sensor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store sensor data"})
		return
	}

	history := models.SensorHistory{
		SensorID:    reading.ID,
		Village:     reading.Village,
		Temperature: reading.Temperature,
		PH:          reading.PH,
		Turbidity:   reading.Turbidity,
		TDS:         reading.TDS,
		CreatedAt:   now,
	}
	if err := ctl.DB.Create(&history).Error; err != nil {
		ctl.log.Warn().Err(err).Str("sensor", reading.ID).Msg("failed to append history")
	}

	metrics.ReadingsIngested.WithLabelValues(source).Inc()

	alerts := ctl.generateAlerts(reading, now)

	// Fire-and-forget: the response does not wait on delivery.
	ctl.Hub.Broadcast(gin.H{"type": "sensor_update", "sensor": reading})
	for _, a := range alerts {
		ctl.Hub.Broadcast(gin.H{"type": "alert", "alert": a})
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "alerts_generated": alerts})
}

// generateAlerts runs the threshold evaluator for a reading, honoring the
// per-source debounce policy, and persists any resulting alert.
func (ctl *Controller) generateAlerts(reading models.SensorReading, now time.Time) []models.Alert {
	alerts := []models.Alert{}

	if ctl.Debounce.Enabled(reading.ID) {
		var last models.Alert
		err := ctl.DB.Where("sensor_id = ?", reading.ID).
			Order("timestamp desc").
			First(&last).Error
		if err == nil && ctl.Debounce.Suppressed(reading.ID, last.Timestamp, now) {
			metrics.AlertsSuppressed.Inc()
			return alerts
		}
	}

	alert := utils.EvaluateReading(reading, now)
	if alert == nil {
		return alerts
	}
	if err := ctl.DB.Create(alert).Error; err != nil {
		ctl.log.Warn().Err(err).Str("sensor", reading.ID).Msg("failed to persist alert")
		return alerts
	}
	metrics.AlertsGenerated.WithLabelValues(alert.Level).Inc()
	return append(alerts, *alert)
}

// GetSensors lists sensors. Admins and users without a village see all
// rows; everyone else sees only their own village.
func (ctl *Controller) GetSensors(c *gin.Context) {
	user, exists := middlewares.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query := ctl.DB.Model(&models.Sensor{})
	if village, ok := villageScope(user); ok {
		query = query.Where("village = ?", village)
	}

	var sensors []models.Sensor
	if err := query.Find(&sensors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sensors"})
		return
	}

	views := make([]models.SensorView, 0, len(sensors))
	for _, s := range sensors {
		views = append(views, s.View())
	}
	c.JSON(http.StatusOK, gin.H{"sensors": views})
}

// GetSensorHistory returns the most recent readings for one sensor, newest
// first, capped at twenty entries.
func (ctl *Controller) GetSensorHistory(c *gin.Context) {
	user, exists := middlewares.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sensorID := c.Param("id")
	var sensor models.Sensor
	if err := ctl.DB.First(&sensor, "id = ?", sensorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor not found"})
		return
	}

	if user.Role != "admin" {
		if user.Village == nil || *user.Village != sensor.Village {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
	}

	var history []models.SensorHistory
	if err := ctl.DB.Where("sensor_id = ?", sensorID).
		Order("created_at desc").
		Limit(historyLimit).
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sensor_id": sensorID, "history": history})
}
