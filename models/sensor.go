package models

import "time"

// Sensor holds the current state of one deployed sensor. Each ingestion
// overwrites this row and appends a SensorHistory entry.
type Sensor struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Village      string    `json:"village"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Temperature  float64   `json:"temperature"`
	PH           float64   `json:"ph"`
	Turbidity    float64   `json:"turbidity"`
	TDS          float64   `json:"tds"`
	Status       string    `json:"status"`
	LastUpdated  time.Time `json:"last_updated"`
	Name         *string   `json:"name,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Manufacturer *string   `json:"manufacturer,omitempty"`
}

// SensorHistory is an immutable snapshot of one reading. Append-only.
type SensorHistory struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	SensorID    string    `json:"-" gorm:"index"`
	Village     string    `json:"-"`
	Temperature float64   `json:"temperature"`
	PH          float64   `json:"ph"`
	Turbidity   float64   `json:"turbidity"`
	TDS         float64   `json:"tds"`
	CreatedAt   time.Time `json:"timestamp"`
}

// SensorReading is the ingestion payload for the sensor data endpoints.
type SensorReading struct {
	ID           string  `json:"id" binding:"required"`
	Village      string  `json:"village" binding:"required"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Temperature  float64 `json:"temperature"`
	PH           float64 `json:"ph"`
	Turbidity    float64 `json:"turbidity"`
	TDS          float64 `json:"tds"`
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Manufacturer *string `json:"manufacturer"`
}

// SensorView is the shape returned by GET /sensors.
type SensorView struct {
	ID          string         `json:"id"`
	Village     string         `json:"village"`
	Location    LatLng         `json:"location"`
	Status      string         `json:"status"`
	LastUpdated time.Time      `json:"last_updated"`
	Readings    ReadingValues  `json:"readings"`
	Metadata    SensorMetadata `json:"metadata"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ReadingValues struct {
	Temperature float64 `json:"temperature"`
	PH          float64 `json:"ph"`
	Turbidity   float64 `json:"turbidity"`
	TDS         float64 `json:"tds"`
}

type SensorMetadata struct {
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Manufacturer *string `json:"manufacturer"`
}

// View converts a stored sensor row into its API representation.
func (s Sensor) View() SensorView {
	return SensorView{
		ID:          s.ID,
		Village:     s.Village,
		Location:    LatLng{Lat: s.Lat, Lng: s.Lng},
		Status:      s.Status,
		LastUpdated: s.LastUpdated,
		Readings: ReadingValues{
			Temperature: s.Temperature,
			PH:          s.PH,
			Turbidity:   s.Turbidity,
			TDS:         s.TDS,
		},
		Metadata: SensorMetadata{
			Name:         s.Name,
			Type:         s.Type,
			Manufacturer: s.Manufacturer,
		},
	}
}
