// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"muhurta/internal/core/almanac"
	"muhurta/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Catalog     *almanac.Catalog
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/healthz", h.healthz)
	httpkit.Get(r, "/categories", h.categories)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
	Uptime  int64  `json:"uptime"`
}

// CategoryResponse is one event category entry
type CategoryResponse struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	FavorableTithi []int  `json:"favorable_tithi"`
}

// CategoriesResponse lists the static catalog
type CategoriesResponse struct {
	Version    int                `json:"version"`
	Categories []CategoryResponse `json:"categories"`
	Slots      []string           `json:"display_slots"`
}

func (h *handlers) healthz(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}, nil
}

func (h *handlers) categories(_ *http.Request) (any, error) {
	cats := h.deps.Catalog.Categories()
	out := CategoriesResponse{
		Version:    h.deps.Catalog.Version,
		Categories: make([]CategoryResponse, 0, len(cats)),
	}
	for _, c := range cats {
		tithis := make([]int, 0, len(c.FavorableTithi))
		for _, t := range c.FavorableTithi {
			tithis = append(tithis, int(t))
		}
		out.Categories = append(out.Categories, CategoryResponse{
			Key:            c.Key,
			Name:           c.Name,
			FavorableTithi: tithis,
		})
	}
	for _, s := range h.deps.Catalog.DisplaySlots() {
		out.Slots = append(out.Slots, s.String())
	}
	return out, nil
}
