package models

import "time"

// Alert is created by the rule evaluator when a reading crosses a threshold.
// Rows are never mutated after creation.
type Alert struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SensorID     string    `json:"sensorId" gorm:"index"`
	Message      string    `json:"message"`
	Level        string    `json:"level"`
	Timestamp    time.Time `json:"timestamp" gorm:"index"`
	Acknowledged bool      `json:"acknowledged" gorm:"default:false"`
}
