// Package scoring computes the 0-100 desirability score for a candidate
// day. Deterministic and side-effect free: same facts, same score
package scoring

import (
	"fmt"
	"strings"
	"time"

	"muhurta/internal/core/almanac"
	"muhurta/internal/core/panchanga"
)

// score constants; the clamp floor is 10 so even a hostile day never
// renders as a zero in the UI
const (
	base           = 50
	tithiBonus     = 25
	nakshatraBonus = 15
	phaseBonus     = 10
	floor          = 10
	ceiling        = 100
)

// Facts are the already-derived calendrical facts for one candidate day.
// The caller resolves them through the snapshot builder; scoring itself
// never touches the ephemeris
type Facts struct {
	Tithi      panchanga.Tithi
	Nakshatra  panchanga.Nakshatra
	Weekday    time.Weekday
	Month      time.Month
	BirthMonth time.Month
}

// Breakdown itemizes how a score was assembled
type Breakdown struct {
	Base      int `json:"base"`
	Tithi     int `json:"tithi"`
	Weekday   int `json:"weekday"`
	Nakshatra int `json:"nakshatra"`
	Phase     int `json:"phase"`
	Total     int `json:"total"` // clamped to [10,100]
}

// Score computes the clamped score and its breakdown for one candidate day
func Score(cal *almanac.Catalog, cat almanac.EventCategory, f Facts) Breakdown {
	b := Breakdown{Base: base}

	if cat.Favors(f.Tithi) {
		b.Tithi = tithiBonus
	}
	b.Weekday = cal.WeekdayBonus(f.Weekday)
	if cal.Auspicious(f.Nakshatra) {
		b.Nakshatra = nakshatraBonus
	}
	if phaseAligned(f.Month, f.BirthMonth) {
		b.Phase = phaseBonus
	}

	total := b.Base + b.Tithi + b.Weekday + b.Nakshatra + b.Phase
	if total < floor {
		total = floor
	}
	if total > ceiling {
		total = ceiling
	}
	b.Total = total
	return b
}

// phaseAligned reports whether the candidate month sits a half-year
// multiple from the birth month
func phaseAligned(m, birth time.Month) bool {
	d := (int(m) - int(birth)) % 6
	if d < 0 {
		d += 6
	}
	return d == 0
}

// Describe renders a qualitative label for a total score
func Describe(total int) string {
	switch {
	case total >= 90:
		return "highly auspicious"
	case total >= 75:
		return "very favorable"
	case total >= 60:
		return "favorable"
	default:
		return "moderately favorable"
	}
}

// Rationale renders the human-readable explanation attached to a candidate
func Rationale(cat almanac.EventCategory, f Facts, b Breakdown) string {
	parts := make([]string, 0, 4)
	if b.Tithi > 0 {
		parts = append(parts, fmt.Sprintf("%s (tithi %d) is favorable for %s", f.Tithi.Name(), f.Tithi, cat.Name))
	}
	if b.Weekday > 0 {
		parts = append(parts, fmt.Sprintf("%s carries a +%d weekday bonus", f.Weekday, b.Weekday))
	}
	if b.Nakshatra > 0 {
		parts = append(parts, fmt.Sprintf("moon rides the auspicious %s nakshatra", f.Nakshatra.Name()))
	}
	if b.Phase > 0 {
		parts = append(parts, "the month aligns with your birth phase")
	}
	if len(parts) == 0 {
		return "no specific planetary support; a workable but unremarkable day"
	}
	return strings.Join(parts, "; ")
}
