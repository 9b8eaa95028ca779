// Package procbind runs the ephemeris provider as a child process. Each
// query spawns one process, writes one JSON request document to stdin and
// reads exactly one JSON response document from stdout. Any deviation,
// spawn failure, timeout, non-zero exit, malformed or trailing output,
// maps to EphemerisUnavailable
package procbind

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/core/celestial"
	perr "muhurta/internal/platform/errors"
)

// operation names on the wire
const (
	OpBodyLongitude = "body_longitude"
	OpSunWindow     = "sun_window"
)

// Request is the single JSON document written to the child's stdin
type Request struct {
	Op   string                 `json:"op"`
	At   time.Time              `json:"at,omitempty"`
	Body string                 `json:"body,omitempty"`
	Date time.Time              `json:"date,omitempty"`
	Geo  *celestial.GeoPosition `json:"geo,omitempty"`
}

// Response is the single JSON document read from the child's stdout.
// Exactly one of Error, Longitude or Window is populated
type Response struct {
	Error     string            `json:"error,omitempty"`
	Longitude *float64          `json:"longitude,omitempty"`
	Window    *ephemeris.Window `json:"window,omitempty"`
}

// DefaultTimeout bounds one child process run
const DefaultTimeout = 10 * time.Second

// Provider shells out to an ephemeris binary for every query
type Provider struct {
	bin     string
	args    []string
	timeout time.Duration
}

// New returns a provider that runs bin with args once per query
func New(bin string, args ...string) *Provider {
	return &Provider{bin: bin, args: args, timeout: DefaultTimeout}
}

// WithTimeout overrides the per-query wall clock bound
func (p *Provider) WithTimeout(d time.Duration) *Provider {
	if d > 0 {
		p.timeout = d
	}
	return p
}

var _ ephemeris.Provider = (*Provider)(nil)

// BodyLongitude queries the child for one body at one instant
func (p *Provider) BodyLongitude(ctx context.Context, at time.Time, body celestial.Body) (celestial.BodyLongitude, error) {
	if err := celestial.ValidateInstant(at); err != nil {
		return celestial.BodyLongitude{}, err
	}
	resp, err := p.run(ctx, Request{Op: OpBodyLongitude, At: at.UTC(), Body: body.String()})
	if err != nil {
		return celestial.BodyLongitude{}, err
	}
	if resp.Longitude == nil {
		return celestial.BodyLongitude{}, perr.EphemerisUnavailablef("provider %s: response missing longitude", p.bin)
	}
	return celestial.BodyLongitude{Body: body, Longitude: celestial.NormalizeDegrees(*resp.Longitude)}, nil
}

// SunWindow queries the child for the daylight window of one date
func (p *Provider) SunWindow(ctx context.Context, date time.Time, geo celestial.GeoPosition) (ephemeris.Window, error) {
	if err := celestial.ValidateInstant(date); err != nil {
		return ephemeris.Window{}, err
	}
	if err := geo.Validate(); err != nil {
		return ephemeris.Window{}, err
	}
	resp, err := p.run(ctx, Request{Op: OpSunWindow, Date: date.UTC(), Geo: &geo})
	if err != nil {
		return ephemeris.Window{}, err
	}
	if resp.Window == nil {
		return ephemeris.Window{}, perr.EphemerisUnavailablef("provider %s: response missing window", p.bin)
	}
	return *resp.Window, nil
}

// run spawns one child process for one request/response exchange
func (p *Provider) run(ctx context.Context, req Request) (Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, perr.EphemerisUnavailablef("encode request: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.bin, p.args...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return Response{}, perr.EphemerisUnavailablef("provider %s timed out after %s", p.bin, p.timeout)
		}
		return Response{}, perr.EphemerisUnavailablef(
			"provider %s: %v: %s", p.bin, err, strings.TrimSpace(stderr.String()))
	}

	dec := json.NewDecoder(&stdout)
	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return Response{}, perr.EphemerisUnavailablef("provider %s: malformed response: %v", p.bin, err)
	}
	// exactly one document; a second one means the contract is broken
	if dec.More() {
		return Response{}, perr.EphemerisUnavailablef("provider %s: trailing data after response document", p.bin)
	}
	if resp.Error != "" {
		return Response{}, perr.EphemerisUnavailablef("provider %s: %s", p.bin, resp.Error)
	}
	return resp, nil
}
