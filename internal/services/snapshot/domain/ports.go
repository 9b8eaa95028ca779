package domain

import (
	"context"
	"time"

	"muhurta/internal/core/celestial"
)

// ReaderPort is the interface implemented by the snapshot service
type ReaderPort interface {
	// At resolves the full roster at one instant; any body failing fails
	// the whole snapshot
	At(ctx context.Context, at time.Time) (Snapshot, error)

	// Day builds the fifteen-interval muhurta table for a date and place
	Day(ctx context.Context, date time.Time, geo celestial.GeoPosition) (DayView, error)
}
