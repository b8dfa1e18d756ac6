package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aakash2700/sih-project/middlewares"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, ctl *Controller) {
	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Water Safety API with Auth, Sensors, Alerts, Health Reports 🚀"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/signup", ctl.Signup)
	r.POST("/login", ctl.Login)
	r.POST("/public/sensor_data", ctl.ReceivePublicSensorData)
	r.POST("/data", ctl.ReceivePublicSensorData) // legacy alias for field devices
	r.POST("/public/health_report", ctl.AddPublicHealthReport)
	r.POST("/public/predict", ctl.Predict)
	r.GET("/ws", ctl.HandleWebSocket)

	// Protected routes
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(ctl.DB, ctl.Secret))
	auth.GET("/me", ctl.Me)
	auth.POST("/sensor_data", ctl.ReceiveSensorData)
	auth.GET("/sensors", ctl.GetSensors)
	auth.GET("/sensors/:id/history", ctl.GetSensorHistory)
	auth.POST("/health_reports", ctl.AddHealthReport)
	auth.GET("/health_reports", ctl.GetHealthReports)
	auth.POST("/predict", ctl.Predict)
	auth.POST("/predict/disease", ctl.PredictDisease)

	// Admin-only routes
	admin := auth.Group("/")
	admin.Use(middlewares.AdminOnly())
	admin.GET("/alerts", ctl.GetAlerts)
	admin.GET("/admin/dashboard", ctl.AdminDashboard)
}
