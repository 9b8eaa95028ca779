// Package domain holds the ranking service types and ports
package domain

import (
	"time"

	"muhurta/internal/core/celestial"
	"muhurta/internal/core/scoring"
)

// ranking defaults; callers may override any of them per query
const (
	DefaultHorizonDays = 90
	DefaultMinScore    = 60
	DefaultTopN        = 20
	MaxHorizonDays     = 366
)

// Profile identifies the person the ranking is computed for. Only the
// birth month participates in scoring today; the full date is carried so
// richer rules can be added without a wire change
type Profile struct {
	Name      string    `json:"name,omitempty"`
	BirthDate time.Time `json:"birth_date"`
}

// Query selects the category, place and horizon to scan
type Query struct {
	Category    string                `json:"category"`
	Geo         celestial.GeoPosition `json:"geo"`
	From        time.Time             `json:"from,omitempty"` // zero means today, UTC
	HorizonDays int                   `json:"horizon_days,omitempty"`
	MinScore    int                   `json:"min_score,omitempty"`
	TopN        int                   `json:"top_n,omitempty"`
}

// Candidate is one ranked day
type Candidate struct {
	Date          string            `json:"date"` // YYYY-MM-DD, UTC civil date
	Weekday       string            `json:"weekday"`
	Score         int               `json:"score"`
	Breakdown     scoring.Breakdown `json:"breakdown"`
	Quality       string            `json:"quality"`
	Tithi         int               `json:"tithi"`
	TithiName     string            `json:"tithi_name"`
	Paksha        string            `json:"paksha"`
	Nakshatra     int               `json:"nakshatra"`
	NakshatraName string            `json:"nakshatra_name"`
	Slot          string            `json:"slot"` // suggested start, HH:MM
	Sunrise       time.Time         `json:"sunrise"`
	Sunset        time.Time         `json:"sunset"`
	Rationale     string            `json:"rationale"`
}

// Ranking is the full response for one query
type Ranking struct {
	RankingID    string      `json:"ranking_id"`
	GeneratedAt  time.Time   `json:"generated_at"`
	Category     string      `json:"category"`
	CategoryName string      `json:"category_name"`
	From         string      `json:"from"`
	HorizonDays  int         `json:"horizon_days"`
	MinScore     int         `json:"min_score"`
	TopN         int         `json:"top_n"`
	Scanned      int         `json:"scanned"`
	Approximate  bool        `json:"approximate,omitempty"`
	Note         string      `json:"note,omitempty"`
	Candidates   []Candidate `json:"candidates"`
}
