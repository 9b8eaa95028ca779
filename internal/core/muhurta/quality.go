package muhurta

import (
	"time"

	"muhurta/internal/core/panchanga"
)

// Quality labels an interval's traditional auspiciousness
type Quality string

const (
	// QualityAuspicious marks a favorable interval
	QualityAuspicious Quality = "auspicious"
	// QualityNeutral marks an indifferent interval
	QualityNeutral Quality = "neutral"
	// QualityInauspicious marks an unfavorable interval
	QualityInauspicious Quality = "inauspicious"
)

// base quality per ordinal 1..15. Early intervals around sunrise and the
// Naktanakara slot lean unfavorable; Vidhi (Abhijit, 8) is the strongest
var baseQuality = [Count]Quality{
	QualityInauspicious, // 1 Rudra
	QualityInauspicious, // 2 Ahi
	QualityAuspicious,   // 3 Mitra
	QualityInauspicious, // 4 Pitru
	QualityAuspicious,   // 5 Vasu
	QualityNeutral,      // 6 Vara
	QualityAuspicious,   // 7 Vishvedeva
	QualityAuspicious,   // 8 Vidhi (Abhijit)
	QualityNeutral,      // 9 Satamukhi
	QualityAuspicious,   // 10 Puruhuta
	QualityNeutral,      // 11 Vahini
	QualityInauspicious, // 12 Naktanakara
	QualityNeutral,      // 13 Varuna
	QualityAuspicious,   // 14 Aryaman
	QualityAuspicious,   // 15 Bhaga
}

// one void ordinal per weekday; that interval is downgraded a step
var voidOrdinalByWeekday = map[time.Weekday]int{
	time.Sunday:    2,
	time.Monday:    7,
	time.Tuesday:   12,
	time.Wednesday: 4,
	time.Thursday:  9,
	time.Friday:    14,
	time.Saturday:  6,
}

// riktaPosition marks the rikta positions within a paksha (tithi mod 15)
var riktaPosition = map[int]bool{4: true, 9: true, 14: true}

// downgrade steps a quality one notch toward inauspicious
func downgrade(q Quality) Quality {
	switch q {
	case QualityAuspicious:
		return QualityNeutral
	default:
		return QualityInauspicious
	}
}

// QualityOf assigns a quality from the fixed rule table keyed by muhurta
// ordinal, weekday and tithi. Deterministic: same inputs, same label
func QualityOf(ordinal int, wd time.Weekday, t panchanga.Tithi) Quality {
	if ordinal < 1 || ordinal > Count {
		return QualityNeutral
	}
	q := baseQuality[ordinal-1]
	if voidOrdinalByWeekday[wd] == ordinal {
		q = downgrade(q)
	}
	// rikta tithis drag the whole day down, except the Abhijit interval
	if riktaPosition[int(t)%15] && ordinal != 8 {
		q = downgrade(q)
	}
	return q
}
