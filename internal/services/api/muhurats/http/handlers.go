// Package http provides the muhurat ranking endpoints
package http

import (
	"net/http"
	"time"

	"muhurta/internal/core/celestial"
	"muhurta/internal/modkit/httpkit"
	perr "muhurta/internal/platform/errors"

	dom "muhurta/internal/services/rank/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Ranker dom.RankerPort
}

type handlers struct {
	deps Deps
}

// Register mounts the muhurat routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON(r, "/rank", h.rank)
}

// RankRequest is the ranking payload. Dates travel as YYYY-MM-DD
type RankRequest struct {
	Name        string  `json:"name" validate:"omitempty,max=120"`
	BirthDate   string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required,max=64"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	From        string  `json:"from" validate:"omitempty,datetime=2006-01-02"`
	HorizonDays int     `json:"horizon_days" validate:"gte=0,lte=366"`
	MinScore    int     `json:"min_score" validate:"gte=0,lte=100"`
	TopN        int     `json:"top_n" validate:"gte=0,lte=100"`
}

func (h *handlers) rank(r *http.Request, in RankRequest) (any, error) {
	birth, err := time.Parse("2006-01-02", in.BirthDate)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("birth_date: %v", err), "birth_date")
	}
	var from time.Time
	if in.From != "" {
		if from, err = time.Parse("2006-01-02", in.From); err != nil {
			return nil, perr.WithField(perr.InvalidArgf("from: %v", err), "from")
		}
	}

	return h.deps.Ranker.Rank(r.Context(),
		dom.Profile{Name: in.Name, BirthDate: birth},
		dom.Query{
			Category:    in.Category,
			Geo:         celestial.GeoPosition{Latitude: in.Latitude, Longitude: in.Longitude},
			From:        from,
			HorizonDays: in.HorizonDays,
			MinScore:    in.MinScore,
			TopN:        in.TopN,
		})
}
