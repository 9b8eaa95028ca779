package muhurta

import (
	"testing"
	"time"

	perr "muhurta/internal/platform/errors"

	"muhurta/internal/core/panchanga"
)

func TestPartitionSixToSix(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	sunrise := day.Add(6 * time.Hour)
	sunset := day.Add(18 * time.Hour)

	ivs, err := Partition(sunrise, sunset)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if len(ivs) != Count {
		t.Fatalf("intervals = %d, want %d", len(ivs), Count)
	}

	// 12h/15 = 48min each
	if got, want := ivs[0].Start, sunrise; !got.Equal(want) {
		t.Errorf("first start = %v, want %v", got, want)
	}
	if got, want := ivs[0].End, sunrise.Add(48*time.Minute); !got.Equal(want) {
		t.Errorf("first end = %v, want %v", got, want)
	}
	if got, want := ivs[14].Start, day.Add(17*time.Hour+12*time.Minute); !got.Equal(want) {
		t.Errorf("last start = %v, want %v", got, want)
	}
	if got, want := ivs[14].End, sunset; !got.Equal(want) {
		t.Errorf("last end = %v, want %v", got, want)
	}
}

func TestPartitionContiguousEqual(t *testing.T) {
	// awkward duration that does not divide evenly by 15
	sunrise := time.Date(2026, 1, 10, 7, 13, 29, 123456789, time.UTC)
	sunset := time.Date(2026, 1, 10, 17, 41, 3, 987654321, time.UTC)

	ivs, err := Partition(sunrise, sunset)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}

	for i := 0; i < len(ivs)-1; i++ {
		if !ivs[i].End.Equal(ivs[i+1].Start) {
			t.Fatalf("gap between interval %d and %d: %v != %v", i+1, i+2, ivs[i].End, ivs[i+1].Start)
		}
	}
	if !ivs[0].Start.Equal(sunrise) || !ivs[len(ivs)-1].End.Equal(sunset) {
		t.Fatal("union does not span [sunrise, sunset)")
	}

	want := sunset.Sub(sunrise) / Count
	for i, iv := range ivs {
		got := iv.End.Sub(iv.Start)
		if diff := got - want; diff > time.Microsecond || diff < -time.Microsecond {
			t.Errorf("interval %d duration %v deviates from %v", i+1, got, want)
		}
		if iv.Ordinal != i+1 {
			t.Errorf("ordinal = %d, want %d", iv.Ordinal, i+1)
		}
		if iv.Name != Name(i+1) {
			t.Errorf("name = %q, want %q", iv.Name, Name(i+1))
		}
	}
}

func TestPartitionInvertedWindow(t *testing.T) {
	at := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)

	_, err := Partition(at, at)
	if err == nil {
		t.Fatal("equal sunrise/sunset accepted")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvertedDayWindow) {
		t.Fatalf("code = %v, want InvertedDayWindow", perr.CodeOf(err))
	}

	_, err = Partition(at, at.Add(-time.Hour))
	if !perr.IsCode(err, perr.ErrorCodeInvertedDayWindow) {
		t.Fatalf("code = %v, want InvertedDayWindow", perr.CodeOf(err))
	}

	_, err = Partition(time.Time{}, at)
	if err == nil {
		t.Fatal("zero sunrise accepted")
	}
}

func TestMidpoint(t *testing.T) {
	sunrise := time.Date(2026, 2, 1, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)
	ivs, _ := Partition(sunrise, sunset)

	// interval 8 (Vidhi) spans 11:36-12:24, midpoint at local noon
	if got, want := ivs[7].Midpoint(), time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Vidhi midpoint = %v, want %v", got, want)
	}
	if ivs[7].Name != "Vidhi" {
		t.Errorf("interval 8 name = %q", ivs[7].Name)
	}
}

func TestQualityOfDeterministic(t *testing.T) {
	for ord := 1; ord <= Count; ord++ {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			for _, ti := range []panchanga.Tithi{1, 4, 8, 15, 19, 30} {
				a := QualityOf(ord, wd, ti)
				b := QualityOf(ord, wd, ti)
				if a != b {
					t.Fatalf("QualityOf(%d,%s,%d) not deterministic", ord, wd, ti)
				}
				if a != QualityAuspicious && a != QualityNeutral && a != QualityInauspicious {
					t.Fatalf("unexpected quality %q", a)
				}
			}
		}
	}
}

func TestQualityRules(t *testing.T) {
	// Vidhi (8) base is auspicious and survives a rikta tithi
	if got := QualityOf(8, time.Monday, panchanga.Tithi(4)); got != QualityAuspicious {
		t.Errorf("Vidhi on rikta tithi = %s, want auspicious", got)
	}
	// Mitra (3) is auspicious on a plain day
	if got := QualityOf(3, time.Sunday, panchanga.Tithi(2)); got != QualityAuspicious {
		t.Errorf("Mitra = %s, want auspicious", got)
	}
	// the Monday void ordinal (7) downgrades Vishvedeva to neutral
	if got := QualityOf(7, time.Monday, panchanga.Tithi(2)); got != QualityNeutral {
		t.Errorf("void Vishvedeva = %s, want neutral", got)
	}
	// rikta tithi downgrades an already-inauspicious interval no further than inauspicious
	if got := QualityOf(1, time.Tuesday, panchanga.Tithi(9)); got != QualityInauspicious {
		t.Errorf("Rudra on rikta = %s, want inauspicious", got)
	}
}
