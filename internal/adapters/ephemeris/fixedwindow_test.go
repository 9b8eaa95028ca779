package ephemeris_test

import (
	"context"
	"testing"
	"time"

	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/adapters/ephemeris/ephemeristest"
	"muhurta/internal/core/celestial"
)

func TestFixedWindowIsLabeledApproximate(t *testing.T) {
	inner := ephemeristest.New()
	fw := ephemeris.NewFixedWindow(inner, time.UTC)

	geo := celestial.GeoPosition{Latitude: 28.6139, Longitude: 77.209}
	w, err := fw.SunWindow(context.Background(), time.Date(2026, 4, 12, 9, 30, 0, 0, time.UTC), geo)
	if err != nil {
		t.Fatalf("SunWindow: %v", err)
	}
	if !w.Approximate {
		t.Fatal("fixed window must be marked approximate")
	}
	if w.Note == "" {
		t.Fatal("approximate window must carry a note")
	}
	if got, want := w.Sunrise, time.Date(2026, 4, 12, 6, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("sunrise = %v, want %v", got, want)
	}
	if got, want := w.Sunset, time.Date(2026, 4, 12, 18, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("sunset = %v, want %v", got, want)
	}
}

func TestFixedWindowDelegatesLongitudes(t *testing.T) {
	inner := ephemeristest.New()
	inner.Pin(celestial.Moon, 123.4)
	fw := ephemeris.NewFixedWindow(inner, nil)

	bl, err := fw.BodyLongitude(context.Background(), time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC), celestial.Moon)
	if err != nil {
		t.Fatalf("BodyLongitude: %v", err)
	}
	if got, want := bl.Longitude, 123.4; got != want {
		t.Errorf("longitude = %v, want %v", got, want)
	}
	if inner.BodyCalls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.BodyCalls)
	}
}

func TestFixedWindowRejectsBadGeo(t *testing.T) {
	fw := ephemeris.NewFixedWindow(ephemeristest.New(), time.UTC)
	_, err := fw.SunWindow(context.Background(), time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		celestial.GeoPosition{Latitude: 99})
	if err == nil {
		t.Fatal("latitude 99 accepted")
	}
}
