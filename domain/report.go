package domain

import (
	"time"
)

// Report represents a daily operational report filed by a store
type Report struct {
	ID        string    `json:"id"`
	StoreCode string    `json:"store_code"`
	Date      time.Time `json:"date"`
	Sales     float64   `json:"sales"`
	Visitors  int       `json:"visitors"`
	Incidents int       `json:"incidents"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReport creates a report for the given store and business date
func NewReport(storeCode string, date time.Time) Report {
	return Report{
		StoreCode: storeCode,
		Date:      date,
		CreatedAt: time.Now(),
	}
}
