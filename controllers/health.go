package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/Aakash2700/sih-project/middlewares"
	"github.com/Aakash2700/sih-project/models"
)

// AddHealthReport upserts a symptom report from an authenticated caller.
func (ctl *Controller) AddHealthReport(c *gin.Context) {
	var req models.HealthReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	report := models.HealthReport{
		ID:        req.ID,
		Village:   req.Village,
		Symptoms:  req.Symptoms,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := ctl.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store health report"})
		return
	}

	ctl.Hub.Broadcast(gin.H{"type": "health_report", "report": report})
	c.JSON(http.StatusOK, gin.H{"status": "ok", "report": report})
}

// AddPublicHealthReport upserts a symptom report without authentication.
// The id is generated when the caller omits one; phone is required.
func (ctl *Controller) AddPublicHealthReport(c *gin.Context) {
	var req models.PublicHealthReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	report := models.HealthReport{
		ID:        id,
		Village:   req.Village,
		Symptoms:  req.Symptoms,
		Phone:     &req.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := ctl.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store health report"})
		return
	}

	ctl.Hub.Broadcast(gin.H{"type": "health_report", "report": report})
	c.JSON(http.StatusOK, gin.H{"status": "ok", "report": report})
}

// GetHealthReports lists reports newest first, scoped to the caller's
// village unless the caller is an admin. start/end accept YYYY-MM-DD
// (expanded to full-day bounds) or full ISO timestamps.
func (ctl *Controller) GetHealthReports(c *gin.Context) {
	user, exists := middlewares.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query := ctl.DB.Model(&models.HealthReport{})
	if village, ok := villageScope(user); ok {
		query = query.Where("village = ?", village)
	}

	if start := c.Query("start"); start != "" {
		if t, ok := parseDateFilter(start, false); ok {
			query = query.Where("created_at >= ?", t)
		}
	}
	if end := c.Query("end"); end != "" {
		if t, ok := parseDateFilter(end, true); ok {
			query = query.Where("created_at <= ?", t)
		}
	}

	var reports []models.HealthReport
	if err := query.Order("created_at desc").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch health reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"health_reports": reports})
}

// parseDateFilter accepts a bare date or an ISO timestamp. Bare dates expand
// to the start of the day, or the end of the day when endOfDay is set.
// Unparseable values are ignored so a bad filter never breaks the listing.
func parseDateFilter(value string, endOfDay bool) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
