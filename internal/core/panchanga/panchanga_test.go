package panchanga

import (
	"math"
	"testing"
)

func TestTithiAt(t *testing.T) {
	cases := []struct {
		name     string
		sun      float64
		moon     float64
		want     Tithi
		paksha   Paksha
		wantName string
	}{
		// (10-280) mod 360 = 90 -> floor(90/12)+1 = 8
		{"ashtami", 280, 10, 8, Shukla, "Ashtami"},
		{"new moon start", 0, 0, 1, Shukla, "Pratipada"},
		{"full moon", 0, 180, 16, Krishna, "Pratipada"},
		{"just before full", 0, 179.9, 15, Shukla, "Purnima"},
		{"amavasya", 0, 359.9, 30, Krishna, "Amavasya"},
		{"mid waning", 100, 340, 21, Krishna, "Shashthi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TithiAt(tc.sun, tc.moon)
			if err != nil {
				t.Fatalf("TithiAt: %v", err)
			}
			if got != tc.want {
				t.Fatalf("TithiAt(%v,%v) = %d, want %d", tc.sun, tc.moon, got, tc.want)
			}
			if got.Paksha() != tc.paksha {
				t.Errorf("paksha = %s, want %s", got.Paksha(), tc.paksha)
			}
			if got.Name() != tc.wantName {
				t.Errorf("name = %s, want %s", got.Name(), tc.wantName)
			}
		})
	}
}

func TestTithiRangeAndWrapInvariance(t *testing.T) {
	for sun := 0.0; sun < 360; sun += 7.3 {
		for moon := 0.0; moon < 360; moon += 11.1 {
			got, err := TithiAt(sun, moon)
			if err != nil {
				t.Fatalf("TithiAt(%v,%v): %v", sun, moon, err)
			}
			if got < 1 || got > 30 {
				t.Fatalf("TithiAt(%v,%v) = %d out of [1,30]", sun, moon, got)
			}
			wrapped, _ := TithiAt(sun+360, moon)
			if wrapped != got {
				t.Fatalf("wrap invariance broken at (%v,%v): %d vs %d", sun, moon, got, wrapped)
			}
		}
	}
}

func TestTithiInvalidAngle(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e12} {
		if _, err := TithiAt(bad, 10); err == nil {
			t.Errorf("expected error for sun=%v", bad)
		}
		if _, err := TithiAt(10, bad); err == nil {
			t.Errorf("expected error for moon=%v", bad)
		}
	}
}

func TestYogaAt(t *testing.T) {
	cases := []struct {
		sun, moon float64
		want      Yoga
	}{
		{0, 0, 1},
		{10, 10, 2},      // 20 / 13.33 = 1.5 -> 2
		{180, 180, 1},    // 360 mod 360 = 0
		{100, 246.6, 26}, // 346.6 / 13.33 = 25.99 -> 26
	}
	for _, tc := range cases {
		got, err := YogaAt(tc.sun, tc.moon)
		if err != nil {
			t.Fatalf("YogaAt: %v", err)
		}
		if got != tc.want {
			t.Errorf("YogaAt(%v,%v) = %d, want %d", tc.sun, tc.moon, got, tc.want)
		}
		if got < 1 || got > 27 {
			t.Errorf("yoga out of range: %d", got)
		}
	}
	if got, _ := YogaAt(0, 0); got.Name() != "Vishkambha" {
		t.Errorf("yoga 1 name = %s", got.Name())
	}
}

func TestNakshatraAt(t *testing.T) {
	// Rohini is the 4th nakshatra, 40 to 53.33 degrees
	n, err := NakshatraAt(45)
	if err != nil {
		t.Fatalf("NakshatraAt: %v", err)
	}
	if n != 4 || n.Name() != "Rohini" {
		t.Fatalf("NakshatraAt(45) = %d (%s), want 4 (Rohini)", n, n.Name())
	}

	first, _ := NakshatraAt(0)
	if first != 1 || first.Name() != "Ashwini" {
		t.Errorf("NakshatraAt(0) = %d (%s)", first, first.Name())
	}
	last, _ := NakshatraAt(359.999)
	if last != 27 || last.Name() != "Revati" {
		t.Errorf("NakshatraAt(359.999) = %d (%s)", last, last.Name())
	}
}

func TestNakshatraMonotonic(t *testing.T) {
	prev := Nakshatra(0)
	for lon := 0.0; lon < 360; lon += 0.5 {
		n, err := NakshatraAt(lon)
		if err != nil {
			t.Fatalf("NakshatraAt(%v): %v", lon, err)
		}
		if n < prev {
			t.Fatalf("nakshatra decreased at %v: %d -> %d", lon, prev, n)
		}
		prev = n
	}
	if prev != 27 {
		t.Fatalf("sweep ended at %d, want 27", prev)
	}
}

func TestNameCatalogs(t *testing.T) {
	if got := len(NakshatraNames()); got != 27 {
		t.Fatalf("nakshatra catalog size = %d, want 27", got)
	}
	if Tithi(99).Name() != "unknown" || Yoga(0).Name() != "unknown" || Nakshatra(-1).Name() != "unknown" {
		t.Fatal("out-of-range names must be 'unknown'")
	}
}
