// muhurta-ephemeris is the out-of-process ephemeris provider. It reads
// exactly one JSON request document from stdin, writes exactly one JSON
// response document to stdout and exits. Diagnostics go to stderr.
//
// Exit codes: 0 on a produced response (including structured errors in
// the error field), 2 on an unreadable request.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"muhurta/internal/adapters/ephemeris/meeus"
	"muhurta/internal/adapters/ephemeris/procbind"
	"muhurta/internal/core/celestial"
)

func main() {
	dec := json.NewDecoder(os.Stdin)
	var req procbind.Request
	if err := dec.Decode(&req); err != nil {
		fmt.Fprintf(os.Stderr, "muhurta-ephemeris: decode request: %v\n", err)
		os.Exit(2)
	}
	if dec.More() {
		fmt.Fprintln(os.Stderr, "muhurta-ephemeris: trailing data after request document")
		os.Exit(2)
	}

	resp := handle(context.Background(), req)

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(resp); err != nil {
		fmt.Fprintf(os.Stderr, "muhurta-ephemeris: encode response: %v\n", err)
		os.Exit(2)
	}
}

func handle(ctx context.Context, req procbind.Request) procbind.Response {
	prov := meeus.New()

	switch req.Op {
	case procbind.OpBodyLongitude:
		body, err := celestial.ParseBody(req.Body)
		if err != nil {
			return procbind.Response{Error: err.Error()}
		}
		bl, err := prov.BodyLongitude(ctx, req.At, body)
		if err != nil {
			return procbind.Response{Error: err.Error()}
		}
		return procbind.Response{Longitude: &bl.Longitude}

	case procbind.OpSunWindow:
		if req.Geo == nil {
			return procbind.Response{Error: "sun_window requires geo"}
		}
		w, err := prov.SunWindow(ctx, req.Date, *req.Geo)
		if err != nil {
			return procbind.Response{Error: err.Error()}
		}
		return procbind.Response{Window: &w}

	default:
		return procbind.Response{Error: fmt.Sprintf("unsupported op %q", req.Op)}
	}
}
