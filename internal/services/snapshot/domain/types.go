// Package domain holds the snapshot service types and ports
package domain

import (
	"time"

	"muhurta/internal/core/celestial"
)

// BodyPosition is one roster body with its derived attributes attached
type BodyPosition struct {
	Body          string  `json:"body"`
	Longitude     float64 `json:"longitude"`
	Sign          int     `json:"sign"`
	SignName      string  `json:"sign_name"`
	DegreesInSign float64 `json:"degrees_in_sign"`
	Nakshatra     int     `json:"nakshatra"` // 1-based
	NakshatraName string  `json:"nakshatra_name"`
}

// Snapshot is the full-roster sky at one instant. Positions preserve
// roster order; a snapshot with a missing body is never produced
type Snapshot struct {
	At        time.Time      `json:"at"`
	JulianDay float64        `json:"julian_day"`
	Positions []BodyPosition `json:"positions"`
}

// Position returns the entry for body, if present
func (s Snapshot) Position(b celestial.Body) (BodyPosition, bool) {
	for _, p := range s.Positions {
		if p.Body == b.String() {
			return p, true
		}
	}
	return BodyPosition{}, false
}

// IntervalView is one muhurta interval with midpoint panchanga rendered
// for display
type IntervalView struct {
	Ordinal       int       `json:"ordinal"`
	Name          string    `json:"name"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Quality       string    `json:"quality"`
	Tithi         int       `json:"tithi"`
	TithiName     string    `json:"tithi_name"`
	Paksha        string    `json:"paksha"`
	Yoga          int       `json:"yoga"`
	YogaName      string    `json:"yoga_name"`
	Nakshatra     int       `json:"nakshatra"`
	NakshatraName string    `json:"nakshatra_name"`
}

// DayView is the full muhurta table for one civil date at one location
type DayView struct {
	Date        string         `json:"date"` // YYYY-MM-DD, UTC civil date
	Sunrise     time.Time      `json:"sunrise"`
	Sunset      time.Time      `json:"sunset"`
	Approximate bool           `json:"approximate,omitempty"`
	Note        string         `json:"note,omitempty"`
	Intervals   []IntervalView `json:"intervals"`
}
