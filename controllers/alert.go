package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aakash2700/sih-project/models"
)

// GetAlerts lists all alerts, newest first. Admin only (enforced by route
// middleware).
func (ctl *Controller) GetAlerts(c *gin.Context) {
	var alerts []models.Alert
	if err := ctl.DB.Order("timestamp desc").Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// AdminDashboard returns entity counts and the distinct villages users
// belong to. Admin only.
func (ctl *Controller) AdminDashboard(c *gin.Context) {
	var users, sensors, alerts, reports int64
	ctl.DB.Model(&models.User{}).Count(&users)
	ctl.DB.Model(&models.Sensor{}).Count(&sensors)
	ctl.DB.Model(&models.Alert{}).Count(&alerts)
	ctl.DB.Model(&models.HealthReport{}).Count(&reports)

	villages := []string{}
	ctl.DB.Model(&models.User{}).
		Where("village IS NOT NULL AND village <> ''").
		Distinct().
		Pluck("village", &villages)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"users":          users,
			"sensors":        sensors,
			"alerts":         alerts,
			"health_reports": reports,
		},
		"villages": villages,
	})
}
