// Package http provides the panchanga day table and sky snapshot endpoints
package http

import (
	"net/http"
	"time"

	"muhurta/internal/core/celestial"
	"muhurta/internal/modkit/httpkit"
	perr "muhurta/internal/platform/errors"

	dom "muhurta/internal/services/snapshot/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Reader dom.ReaderPort
}

type handlers struct {
	deps Deps
}

// Register mounts the panchanga routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON(r, "/day", h.day)
	httpkit.PostJSON(r, "/snapshot", h.snapshot)
}

// DayRequest selects a civil date and location
type DayRequest struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func (h *handlers) day(r *http.Request, in DayRequest) (any, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("date: %v", err), "date")
	}
	return h.deps.Reader.Day(r.Context(), date,
		celestial.GeoPosition{Latitude: in.Latitude, Longitude: in.Longitude})
}

// SnapshotRequest selects an instant; empty means now
type SnapshotRequest struct {
	At string `json:"at" validate:"omitempty"`
}

func (h *handlers) snapshot(r *http.Request, in SnapshotRequest) (any, error) {
	at := time.Now().UTC()
	if in.At != "" {
		var err error
		if at, err = time.Parse(time.RFC3339, in.At); err != nil {
			return nil, perr.WithField(perr.InvalidArgf("at: %v", err), "at")
		}
	}
	return h.deps.Reader.At(r.Context(), at)
}
