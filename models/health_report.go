package models

import "time"

// HealthReport is a community-submitted symptom report. Symptoms are stored
// as a JSON array column so entries containing commas survive round trips.
type HealthReport struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Village   string    `json:"village"`
	Symptoms  []string  `json:"symptoms" gorm:"serializer:json"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthReportRequest is the payload for the authenticated report endpoint.
type HealthReportRequest struct {
	ID       string   `json:"id" binding:"required"`
	Village  string   `json:"village" binding:"required"`
	Symptoms []string `json:"symptoms" binding:"required"`
	Phone    *string  `json:"phone"`
}

// PublicHealthReportRequest is the payload for the unauthenticated report
// endpoint. The id is generated server-side when absent; phone is mandatory.
type PublicHealthReportRequest struct {
	ID       string   `json:"id"`
	Village  string   `json:"village" binding:"required"`
	Symptoms []string `json:"symptoms" binding:"required"`
	Phone    string   `json:"phone" binding:"required"`
}
