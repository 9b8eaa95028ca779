package domain

import "context"

// RankerPort is the interface implemented by the ranking service
type RankerPort interface {
	// Rank scans the horizon and returns the top candidates for the
	// profile and query. Results are recomputed from scratch every call
	Rank(ctx context.Context, p Profile, q Query) (Ranking, error)
}
