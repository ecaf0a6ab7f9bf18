package mgnrega

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/districts", h.GetDistricts)
	r.Get("/data", h.GetData)
	r.Get("/performance/{districtId}", h.GetPerformance)
	r.Get("/detect", h.Detect)
	r.Post("/fetch-now", h.FetchNow)
	r.Post("/seed-districts", h.SeedDistricts)

	return r
}
