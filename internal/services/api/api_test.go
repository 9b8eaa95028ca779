package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"muhurta/internal/adapters/ephemeris/ephemeristest"
	"muhurta/internal/modkit/module"
	"muhurta/internal/platform/config"
	phttp "muhurta/internal/platform/net/http"
)

func newTestMux(t *testing.T) http.Handler {
	t.Helper()
	module.Reset()

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config:    config.New(),
		Ephemeris: ephemeristest.New(),
	})
	return mux
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("")
	} else {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: bad envelope: %v (body %q)", method, path, err, rec.Body.String())
	}
	return rec, env
}

func TestHealthz(t *testing.T) {
	mux := newTestMux(t)

	rec, env := doJSON(t, mux, http.MethodGet, "/api/v1/meta/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["ok"] != true {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestCategoriesListsCatalog(t *testing.T) {
	mux := newTestMux(t)

	rec, env := doJSON(t, mux, http.MethodGet, "/api/v1/meta/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data := env.Data.(map[string]any)
	cats, ok := data["categories"].([]any)
	if !ok || len(cats) == 0 {
		t.Fatalf("categories = %#v", data["categories"])
	}
	first := cats[0].(map[string]any)
	if first["key"] == "" || first["name"] == "" {
		t.Fatalf("category entry = %#v", first)
	}
}

func TestRankEndpoint(t *testing.T) {
	mux := newTestMux(t)

	body := `{
		"birth_date": "1990-04-15",
		"category": "wedding",
		"latitude": 28.6139,
		"longitude": 77.209,
		"from": "2026-01-01",
		"horizon_days": 30
	}`
	rec, env := doJSON(t, mux, http.MethodPost, "/api/v1/muhurats/rank", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data := env.Data.(map[string]any)
	if data["ranking_id"] == "" {
		t.Error("ranking_id missing")
	}
	if data["category"] != "wedding" {
		t.Errorf("category = %v", data["category"])
	}
	if _, ok := data["candidates"].([]any); !ok {
		t.Fatalf("candidates = %#v", data["candidates"])
	}
}

func TestRankValidation(t *testing.T) {
	mux := newTestMux(t)

	// missing birth_date fails validation before the service runs
	rec, env := doJSON(t, mux, http.MethodPost, "/api/v1/muhurats/rank",
		`{"category":"wedding","latitude":0,"longitude":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
	if env.Error == "" {
		t.Error("validation error message missing")
	}
}

func TestRankUnknownCategoryIs404(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/v1/muhurats/rank",
		`{"birth_date":"1990-04-15","category":"coronation","latitude":0,"longitude":0}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestPanchangaDayEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec, env := doJSON(t, mux, http.MethodPost, "/api/v1/panchanga/day",
		`{"date":"2026-03-04","latitude":28.6139,"longitude":77.209}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data := env.Data.(map[string]any)
	ivs, ok := data["intervals"].([]any)
	if !ok || len(ivs) != 15 {
		t.Fatalf("intervals = %d, want 15", len(ivs))
	}
}

func TestPanchangaSnapshotEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec, env := doJSON(t, mux, http.MethodPost, "/api/v1/panchanga/snapshot",
		`{"at":"2026-03-04T06:00:00Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data := env.Data.(map[string]any)
	positions, ok := data["positions"].([]any)
	if !ok || len(positions) != 8 {
		t.Fatalf("positions = %#v", data["positions"])
	}
}
