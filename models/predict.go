package models

// PredictRequest carries a reading to the prediction endpoints.
type PredictRequest struct {
	SensorID    string  `json:"sensor_id" binding:"required"`
	Village     string  `json:"village" binding:"required"`
	Temperature float64 `json:"temperature"`
	PH          float64 `json:"ph"`
	Turbidity   float64 `json:"turbidity"`
	TDS         float64 `json:"tds"`
}
