package controllers

import (
	"gorm.io/gorm"

	"github.com/Aakash2700/sih-project/models"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Sensor{},
		&models.SensorHistory{},
		&models.Alert{},
		&models.HealthReport{},
	)
}
