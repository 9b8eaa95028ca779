package scoring

import (
	"strings"
	"testing"
	"time"

	"muhurta/internal/core/almanac"
	"muhurta/internal/core/panchanga"
)

func mustCatalog(t *testing.T) *almanac.Catalog {
	t.Helper()
	c, err := almanac.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestScoreClampsAtCeiling(t *testing.T) {
	cal := mustCatalog(t)
	cat, _ := cal.Category("wedding")

	// favorable tithi 8, Wednesday +20, Rohini +15, phase unaligned:
	// 50+25+20+15 = 110 -> clamped to 100
	f := Facts{
		Tithi:      panchanga.Tithi(8),
		Nakshatra:  panchanga.Nakshatra(4), // Rohini
		Weekday:    time.Wednesday,
		Month:      time.March,
		BirthMonth: time.April,
	}
	b := Score(cal, cat, f)
	if b.Tithi != 25 || b.Weekday != 20 || b.Nakshatra != 15 || b.Phase != 0 {
		t.Fatalf("breakdown = %+v", b)
	}
	if b.Total != 100 {
		t.Fatalf("total = %d, want 100 (clamped)", b.Total)
	}
}

func TestScoreBaseline(t *testing.T) {
	cal := mustCatalog(t)
	cat, _ := cal.Category("travel")

	// nothing aligns: unfavorable tithi, Saturday, plain nakshatra, off-phase
	f := Facts{
		Tithi:      panchanga.Tithi(30),
		Nakshatra:  panchanga.Nakshatra(6),
		Weekday:    time.Saturday,
		Month:      time.May,
		BirthMonth: time.June,
	}
	b := Score(cal, cat, f)
	if b.Total != 50 {
		t.Fatalf("total = %d, want bare base 50", b.Total)
	}
}

func TestPhaseAlignment(t *testing.T) {
	cal := mustCatalog(t)
	cat, _ := cal.Category("education")

	f := Facts{
		Tithi:      panchanga.Tithi(20), // not favorable for education
		Nakshatra:  panchanga.Nakshatra(2),
		Weekday:    time.Sunday,
		Month:      time.November,
		BirthMonth: time.May, // Nov - May = 6 months, aligned
	}
	b := Score(cal, cat, f)
	if b.Phase != 10 {
		t.Fatalf("phase bonus = %d, want 10", b.Phase)
	}
	if b.Total != 60 {
		t.Fatalf("total = %d, want 60", b.Total)
	}

	// same month is trivially aligned
	f.Month, f.BirthMonth = time.May, time.May
	if Score(cal, cat, f).Phase != 10 {
		t.Fatal("same month must be phase aligned")
	}

	// wrap across the year boundary: Jan vs Jul
	f.Month, f.BirthMonth = time.January, time.July
	if Score(cal, cat, f).Phase != 10 {
		t.Fatal("Jan/Jul must be phase aligned")
	}

	f.Month, f.BirthMonth = time.January, time.June
	if Score(cal, cat, f).Phase != 0 {
		t.Fatal("Jan/Jun must not be phase aligned")
	}
}

func TestScoreDeterministic(t *testing.T) {
	cal := mustCatalog(t)
	cat, _ := cal.Category("business")

	f := Facts{
		Tithi:      panchanga.Tithi(11),
		Nakshatra:  panchanga.Nakshatra(13),
		Weekday:    time.Thursday,
		Month:      time.August,
		BirthMonth: time.February,
	}
	first := Score(cal, cat, f)
	for i := 0; i < 100; i++ {
		if got := Score(cal, cat, f); got != first {
			t.Fatalf("score drifted on run %d: %+v vs %+v", i, got, first)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{100, "highly auspicious"},
		{90, "highly auspicious"},
		{80, "very favorable"},
		{65, "favorable"},
		{50, "moderately favorable"},
		{10, "moderately favorable"},
	}
	for _, tc := range cases {
		if got := Describe(tc.total); got != tc.want {
			t.Errorf("Describe(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestRationaleMentionsContributors(t *testing.T) {
	cal := mustCatalog(t)
	cat, _ := cal.Category("wedding")
	f := Facts{
		Tithi:      panchanga.Tithi(8),
		Nakshatra:  panchanga.Nakshatra(4),
		Weekday:    time.Wednesday,
		Month:      time.March,
		BirthMonth: time.March,
	}
	b := Score(cal, cat, f)
	r := Rationale(cat, f, b)
	for _, want := range []string{"Ashtami", "Wednesday", "Rohini", "birth phase"} {
		if !strings.Contains(r, want) {
			t.Errorf("rationale %q missing %q", r, want)
		}
	}
}
