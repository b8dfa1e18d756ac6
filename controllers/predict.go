package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aakash2700/sih-project/models"
)

// Predict runs both classifiers for a reading.
func (ctl *Controller) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	safety := ctl.Predictor.PredictSafety(req.Temperature, req.PH, req.Turbidity, req.TDS)
	disease := ctl.Predictor.PredictDisease(req.Temperature, req.PH, req.Turbidity, req.TDS)

	c.JSON(http.StatusOK, gin.H{
		"sensor_id":          req.SensorID,
		"village":            req.Village,
		"water_safety":       safety,
		"disease_prediction": disease,
	})
}

// PredictDisease runs only the disease classifier.
func (ctl *Controller) PredictDisease(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	disease := ctl.Predictor.PredictDisease(req.Temperature, req.PH, req.Turbidity, req.TDS)

	c.JSON(http.StatusOK, gin.H{
		"sensor_id":          req.SensorID,
		"village":            req.Village,
		"disease_prediction": disease,
	})
}
