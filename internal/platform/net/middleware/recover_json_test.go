package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "muhurta/internal/platform/net"
)

func TestRecoverJSONWritesErrorEnvelope(t *testing.T) {
	initTestLogger(t)

	h := RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-500"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-500" {
		t.Errorf("X-Request-ID = %q", got)
	}

	var body pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad envelope: %v (body %q)", err, rec.Body.String())
	}
	if body.StatusCode != http.StatusInternalServerError {
		t.Errorf("status_code = %d", body.StatusCode)
	}
	if body.Error == "" {
		t.Error("error message missing")
	}
	if body.RequestID != "req-500" {
		t.Errorf("request_id = %q", body.RequestID)
	}
}
