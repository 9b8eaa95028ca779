package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "muhurta/internal/platform/errors"
	pnet "muhurta/internal/platform/net"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func TestRespondOKEnvelope(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-ok"))
	rec := httptest.NewRecorder()

	RespondOK(rec, req, map[string]int{"n": 7})

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.StatusCode != stdhttp.StatusOK || env.RequestID != "req-ok" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Data == nil {
		t.Fatal("data missing")
	}
}

func TestRespondErrorMapsCode(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RespondError(rec, req, perr.NotFoundf("no such thing"))

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.StatusCode != stdhttp.StatusNotFound || env.Error == "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandleErrorResponse(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return Error(perr.InvalidArgf("bad input"))
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == "" {
		t.Fatal("error message missing")
	}
}

func TestHandleNoContent(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response { return NoContent() })
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 carried a body: %q", rec.Body.String())
	}
}
