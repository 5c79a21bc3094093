package model

import "time"

// TimestampLayout renders instants the way JavaScript's toISOString does.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Reading is a single simulated energy sample. It is created per request and never stored.
type Reading struct {
	ID        int         `json:"id"`
	Code      string      `json:"code"`
	EnergyKWh float64     `json:"energia_kWh"`
	Status    PanelStatus `json:"status"`
	Timestamp string      `json:"timestamp"`
}

// NewReading builds the reading for a panel sampled at the given instant.
func NewReading(p Panel, energyKWh float64, at time.Time) Reading {
	return Reading{
		ID:        p.ID,
		Code:      p.Code,
		EnergyKWh: energyKWh,
		Status:    p.Status(),
		Timestamp: at.UTC().Format(TimestampLayout),
	}
}
