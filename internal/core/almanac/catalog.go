// Package almanac loads the static auspiciousness catalog from the embedded
// catalog.json: event categories with their favorable tithis, the auspicious
// nakshatra subset, weekday bonuses and the canonical display slots.
// The catalog is immutable after Load; concurrent readers, no writers
package almanac

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"muhurta/internal/core/panchanga"
)

//go:embed catalog.json
var embedded []byte

type rawCategory struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	FavorableTithi []int  `json:"favorable_tithi"`
}

type rawCatalog struct {
	Version             int            `json:"version"`
	Meta                map[string]any `json:"meta"`
	Categories          []rawCategory  `json:"categories"`
	AuspiciousNakshatra []int          `json:"auspicious_nakshatra"`
	WeekdayBonus        map[string]int `json:"weekday_bonus"`
	DisplaySlots        []string       `json:"display_slots"`
}

// EventCategory is one catalog entry; favorable tithis are kept both as a
// set for membership tests and sorted for display
type EventCategory struct {
	Key            string
	Name           string
	FavorableTithi []panchanga.Tithi

	favorable map[panchanga.Tithi]struct{}
}

// Favors reports whether the tithi is favorable for this category
func (c EventCategory) Favors(t panchanga.Tithi) bool {
	_, ok := c.favorable[t]
	return ok
}

// Slot is a canonical display time of day
type Slot struct {
	Hour   int
	Minute int
}

// String formats the slot as HH:MM
func (s Slot) String() string { return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute) }

// Catalog is the compiled immutable catalog
type Catalog struct {
	Version int

	categories map[string]EventCategory
	ordered    []EventCategory

	auspicious map[panchanga.Nakshatra]struct{}
	weekday    map[time.Weekday]int
	slots      []Slot
}

var weekdayKeys = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load returns the compiled catalog from the embedded catalog.json
func Load() (*Catalog, error) {
	var rc rawCatalog
	if err := json.Unmarshal(embedded, &rc); err != nil {
		return nil, fmt.Errorf("almanac: parse catalog.json: %w", err)
	}

	c := &Catalog{
		Version:    rc.Version,
		categories: make(map[string]EventCategory, len(rc.Categories)),
		auspicious: make(map[panchanga.Nakshatra]struct{}, len(rc.AuspiciousNakshatra)),
		weekday:    make(map[time.Weekday]int, len(rc.WeekdayBonus)),
	}

	for _, raw := range rc.Categories {
		key := strings.ToLower(strings.TrimSpace(raw.Key))
		if key == "" {
			return nil, fmt.Errorf("almanac: category with empty key")
		}
		if _, dup := c.categories[key]; dup {
			return nil, fmt.Errorf("almanac: duplicate category %q", key)
		}
		ec := EventCategory{
			Key:       key,
			Name:      raw.Name,
			favorable: make(map[panchanga.Tithi]struct{}, len(raw.FavorableTithi)),
		}
		for _, n := range raw.FavorableTithi {
			if n < 1 || n > 30 {
				return nil, fmt.Errorf("almanac: category %q: tithi %d out of [1,30]", key, n)
			}
			t := panchanga.Tithi(n)
			if _, dup := ec.favorable[t]; dup {
				continue
			}
			ec.favorable[t] = struct{}{}
			ec.FavorableTithi = append(ec.FavorableTithi, t)
		}
		sort.Slice(ec.FavorableTithi, func(i, j int) bool { return ec.FavorableTithi[i] < ec.FavorableTithi[j] })
		c.categories[key] = ec
		c.ordered = append(c.ordered, ec)
	}

	for _, n := range rc.AuspiciousNakshatra {
		if n < 1 || n > 27 {
			return nil, fmt.Errorf("almanac: auspicious nakshatra %d out of [1,27]", n)
		}
		c.auspicious[panchanga.Nakshatra(n)] = struct{}{}
	}

	for k, v := range rc.WeekdayBonus {
		wd, ok := weekdayKeys[strings.ToLower(k)]
		if !ok {
			return nil, fmt.Errorf("almanac: unknown weekday %q", k)
		}
		c.weekday[wd] = v
	}

	for _, s := range rc.DisplaySlots {
		var h, m int
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
			return nil, fmt.Errorf("almanac: bad display slot %q", s)
		}
		c.slots = append(c.slots, Slot{Hour: h, Minute: m})
	}
	if len(c.slots) == 0 {
		return nil, fmt.Errorf("almanac: no display slots")
	}

	return c, nil
}

// Category returns the catalog entry for a key
func (c *Catalog) Category(key string) (EventCategory, bool) {
	ec, ok := c.categories[strings.ToLower(strings.TrimSpace(key))]
	return ec, ok
}

// Categories returns the catalog entries in file order
func (c *Catalog) Categories() []EventCategory {
	out := make([]EventCategory, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Auspicious reports whether the nakshatra belongs to the fixed auspicious subset
func (c *Catalog) Auspicious(n panchanga.Nakshatra) bool {
	_, ok := c.auspicious[n]
	return ok
}

// WeekdayBonus returns the score bonus for the weekday, 0 when absent
func (c *Catalog) WeekdayBonus(wd time.Weekday) int { return c.weekday[wd] }

// DisplaySlots returns the canonical display slots in file order
func (c *Catalog) DisplaySlots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// SlotFor picks the display slot for a candidate day. The pick is a pure
// function of the day's tithi so repeated rankings agree
func (c *Catalog) SlotFor(t panchanga.Tithi) Slot {
	return c.slots[(int(t)-1)%len(c.slots)]
}
