package service

import (
	"context"
	"testing"
	"time"

	"muhurta/internal/adapters/ephemeris/ephemeristest"
	"muhurta/internal/core/celestial"
	"muhurta/internal/modkit"
	perr "muhurta/internal/platform/errors"
)

var testGeo = celestial.GeoPosition{Latitude: 28.6139, Longitude: 77.209}

func newService(fake *ephemeristest.Provider) *Service {
	return New(modkit.Deps{Ephemeris: fake})
}

func TestSnapshotRosterOrder(t *testing.T) {
	fake := ephemeristest.New()
	fake.Pin(celestial.Sun, 280).Pin(celestial.Moon, 10)
	svc := newService(fake)

	snap, err := svc.At(context.Background(), time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got, want := len(snap.Positions), len(celestial.Roster); got != want {
		t.Fatalf("positions = %d, want %d", got, want)
	}
	for i, b := range celestial.Roster {
		if snap.Positions[i].Body != b.String() {
			t.Errorf("position %d = %q, want %q", i, snap.Positions[i].Body, b)
		}
	}

	sun, ok := snap.Position(celestial.Sun)
	if !ok {
		t.Fatal("sun missing")
	}
	if sun.SignName != "Capricorn" {
		t.Errorf("sun at 280 in %q, want Capricorn", sun.SignName)
	}
	if snap.JulianDay == 0 {
		t.Error("julian day not set")
	}
}

func TestSnapshotAllOrNothing(t *testing.T) {
	fake := ephemeristest.New()
	fake.BodyErr[celestial.Jupiter] = perr.EphemerisUnavailablef("no VSOP87 data")
	svc := newService(fake)

	_, err := svc.At(context.Background(), time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("snapshot with a failing body accepted")
	}
	if !perr.IsCode(err, perr.ErrorCodeEphemerisUnavailable) {
		t.Fatalf("code = %v, want EphemerisUnavailable", perr.CodeOf(err))
	}
}

func TestSnapshotRejectsZeroInstant(t *testing.T) {
	svc := newService(ephemeristest.New())
	_, err := svc.At(context.Background(), time.Time{})
	if !perr.IsCode(err, perr.ErrorCodeInvalidInstant) {
		t.Fatalf("code = %v, want InvalidInstant", perr.CodeOf(err))
	}
}

func TestDayViewFifteenIntervals(t *testing.T) {
	fake := ephemeristest.New()
	fake.Pin(celestial.Sun, 280).Pin(celestial.Moon, 10)
	svc := newService(fake)

	day, err := svc.Day(context.Background(), time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), testGeo)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if got, want := len(day.Intervals), 15; got != want {
		t.Fatalf("intervals = %d, want %d", got, want)
	}
	if day.Date != "2026-03-04" {
		t.Errorf("date = %q", day.Date)
	}
	if day.Approximate {
		t.Error("fake window is not approximate")
	}

	// sun 280, moon 10 -> angle 90 -> tithi 8 Ashtami on every interval
	// since both bodies are pinned
	for _, iv := range day.Intervals {
		if iv.Tithi != 8 || iv.TithiName != "Ashtami" || iv.Paksha != "shukla" {
			t.Fatalf("interval %d tithi = %d (%s %s)", iv.Ordinal, iv.Tithi, iv.TithiName, iv.Paksha)
		}
		if iv.Quality == "" {
			t.Fatalf("interval %d missing quality", iv.Ordinal)
		}
	}
	if day.Intervals[7].Name != "Vidhi" {
		t.Errorf("interval 8 = %q, want Vidhi", day.Intervals[7].Name)
	}
}

func TestDayViewWeekdayFollowsCivilDate(t *testing.T) {
	// sunrise on the previous UTC day must not shift the quality table
	// to the wrong weekday. 2026-01-02 is a Friday: its void interval is
	// 14 (Aryaman, downgraded to neutral); Thursday's would be 9
	fake := ephemeristest.New()
	fake.Pin(celestial.Sun, 280).Pin(celestial.Moon, 10) // tithi 8, not rikta
	fake.Rise = time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC)
	fake.Set = time.Date(2026, 1, 2, 5, 0, 0, 0, time.UTC)
	svc := newService(fake)

	day, err := svc.Day(context.Background(), time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), testGeo)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if day.Date != "2026-01-02" {
		t.Fatalf("date = %q", day.Date)
	}
	if got := day.Intervals[13].Quality; got != "neutral" {
		t.Errorf("interval 14 quality = %q, want neutral (Friday void)", got)
	}
	if got := day.Intervals[8].Quality; got != "neutral" {
		t.Errorf("interval 9 quality = %q, want neutral (Thursday void must not apply)", got)
	}
}

func TestDayViewSurfacesWindowError(t *testing.T) {
	fake := ephemeristest.New()
	fake.WindowErr = perr.InvertedDayWindowf("polar night")
	svc := newService(fake)

	_, err := svc.Day(context.Background(), time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC), testGeo)
	if !perr.IsCode(err, perr.ErrorCodeInvertedDayWindow) {
		t.Fatalf("code = %v, want InvertedDayWindow", perr.CodeOf(err))
	}
}
