// Package muhurta partitions the daylight window into the fifteen
// traditional muhurta intervals and assigns each a quality label
package muhurta

import (
	"time"

	"muhurta/internal/core/panchanga"
	perr "muhurta/internal/platform/errors"
)

// Count is the number of muhurta intervals in one daylight window
const Count = 15

// the fifteen daytime muhurta names in cyclic order; the table is fixed,
// not data-dependent. Vidhi (8th) is the midday Abhijit muhurta
var muhurtaNames = [Count]string{
	"Rudra", "Ahi", "Mitra", "Pitru", "Vasu",
	"Vara", "Vishvedeva", "Vidhi", "Satamukhi", "Puruhuta",
	"Vahini", "Naktanakara", "Varuna", "Aryaman", "Bhaga",
}

// Name returns the fixed muhurta name for ordinal 1..15
func Name(ordinal int) string {
	if ordinal < 1 || ordinal > Count {
		return "unknown"
	}
	return muhurtaNames[ordinal-1]
}

// Interval is one muhurta within a day. The panchanga fields are computed
// at the interval midpoint and attached by the caller, which owns the
// ephemeris access
type Interval struct {
	Ordinal int       `json:"ordinal"` // 1..15
	Name    string    `json:"name"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Quality Quality   `json:"quality"`

	Tithi     panchanga.Tithi     `json:"tithi,omitempty"`
	Yoga      panchanga.Yoga      `json:"yoga,omitempty"`
	Nakshatra panchanga.Nakshatra `json:"nakshatra,omitempty"`
}

// Midpoint returns the middle instant of the interval
func (iv Interval) Midpoint() time.Time {
	return iv.Start.Add(iv.End.Sub(iv.Start) / 2)
}

// Partition divides [sunrise, sunset) into fifteen contiguous equal
// intervals. Sunset must be strictly after sunrise; polar-region windows
// where that does not hold are rejected, never defaulted
func Partition(sunrise, sunset time.Time) ([]Interval, error) {
	if sunrise.IsZero() || sunset.IsZero() {
		return nil, perr.InvalidInstantf("zero sunrise or sunset instant")
	}
	if !sunrise.Before(sunset) {
		return nil, perr.InvertedDayWindowf(
			"sunset %s does not follow sunrise %s", sunset.Format(time.RFC3339), sunrise.Format(time.RFC3339))
	}

	d := sunset.Sub(sunrise)
	out := make([]Interval, 0, Count)
	for i := 0; i < Count; i++ {
		// integer duration math keeps interval[i].End == interval[i+1].Start
		// exact, and boundary 15 lands on sunset itself
		start := sunrise.Add(d * time.Duration(i) / Count)
		end := sunrise.Add(d * time.Duration(i+1) / Count)
		out = append(out, Interval{
			Ordinal: i + 1,
			Name:    muhurtaNames[i],
			Start:   start,
			End:     end,
		})
	}
	return out, nil
}
