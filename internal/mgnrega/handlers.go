package mgnrega

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/geocoding"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/observability"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/seeds"
	"github.com/go-chi/chi/v5"
)

// Geocoder is implemented by geocoding.Client; tests substitute a fake.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon string) (*geocoding.Address, error)
}

// Handler carries the dependencies the HTTP layer needs. It owns no state
// of its own; every response is computed from the store on demand.
type Handler struct {
	store        *Store
	pipeline     *Pipeline
	reconciler   *Reconciler
	geocoder     Geocoder
	metrics      *observability.Metrics
	state        string // default state for requests that do not name one
	districtsCSV string
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// sampleDistricts keeps the frontend usable on a fresh deployment before
// the first ingest or seed finishes. The zero ids are synthetic.
var sampleDistricts = []DistrictRow{
	{ID: 0, District: "Lucknow"},
	{ID: 1, District: "Varanasi"},
	{ID: 2, District: "Kanpur Nagar"},
	{ID: 3, District: "Prayagraj"},
	{ID: 4, District: "Gorakhpur"},
}

// GetDistricts lists districts for the requested state, falling back to a
// compact sample list when the registry is empty.
func (h *Handler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		state = h.state
	}

	districts, err := h.store.ListDistricts(state)
	if err != nil {
		log.Printf("[GetDistricts] state=%q error: %v", state, err)
		http.Error(w, "failed to load districts", http.StatusInternalServerError)
		return
	}
	if len(districts) == 0 {
		writeJSON(w, sampleDistricts)
		return
	}
	writeJSON(w, districts)
}

type seriesResponse struct {
	Rows    []MeasurementRow `json:"rows"`
	Summary *Summary         `json:"summary"`
}

// GetData returns the measurement series and trend summary for one district
// named by state + district query parameters.
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		state = h.state
	}
	district := r.URL.Query().Get("district")
	if district == "" {
		http.Error(w, "district required", http.StatusBadRequest)
		return
	}

	rows, err := h.store.SeriesForDistrict(state, district)
	if err != nil {
		log.Printf("[GetData] state=%q district=%q error: %v", state, district, err)
		http.Error(w, "failed to get data", http.StatusInternalServerError)
		return
	}
	writeJSON(w, seriesResponse{Rows: rows, Summary: Summarize(rows)})
}

// GetPerformance returns the series and summary for a district id. An
// unknown id yields empty rows and a null summary, not an error.
func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "districtId")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		http.Error(w, "districtId required", http.StatusBadRequest)
		return
	}

	rows, err := h.store.SeriesForDistrictID(uint(id))
	if err != nil {
		log.Printf("[GetPerformance] id=%d error: %v", id, err)
		http.Error(w, "failed to get performance", http.StatusInternalServerError)
		return
	}
	writeJSON(w, seriesResponse{Rows: rows, Summary: Summarize(rows)})
}

// FetchNow triggers an on-demand ingestion run. The body may name a state;
// an empty body means the configured default, a malformed one is rejected.
func (h *Handler) FetchNow(w http.ResponseWriter, r *http.Request) {
	var body struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	state := body.State
	if state == "" {
		state = h.state
	}

	if err := h.pipeline.Ingest(r.Context(), state); err != nil {
		log.Printf("[FetchNow] state=%q error: %v", state, err)
		http.Error(w, "fetch failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// SeedDistricts re-seeds the canonical district list from the CSV without a
// restart. Existing rows are untouched; EnsureDistrict no-ops on them.
func (h *Handler) SeedDistricts(w http.ResponseWriter, r *http.Request) {
	n, err := seeds.SeedDistricts(h.store, h.state, h.districtsCSV)
	if err != nil {
		log.Printf("[SeedDistricts] error: %v", err)
		http.Error(w, "seed failed", http.StatusInternalServerError)
		return
	}
	log.Printf("[SeedDistricts] seeded %d districts for %s", n, h.state)
	writeJSON(w, map[string]string{"status": "seeded"})
}

// Detect reverse geocodes lat/lon and maps the result onto a canonical
// district. No usable address field means district:null; an unmatched
// candidate comes back verbatim so the caller can decide whether to trust
// it.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")
	if lat == "" || lon == "" {
		http.Error(w, "lat & lon required", http.StatusBadRequest)
		return
	}

	addr, err := h.geocoder.ReverseGeocode(r.Context(), lat, lon)
	if err != nil {
		h.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		log.Printf("[Detect] lat=%s lon=%s error: %v", lat, lon, err)
		http.Error(w, "reverse geocode failed", http.StatusInternalServerError)
		return
	}
	h.metrics.GeocodeRequests.WithLabelValues("success").Inc()

	candidate := addr.DistrictCandidate()
	if candidate == "" {
		h.metrics.ReconcileTotal.WithLabelValues("none").Inc()
		writeJSON(w, map[string]any{"district": nil})
		return
	}

	name, matched, err := h.reconciler.Resolve(candidate)
	if err != nil {
		log.Printf("[Detect] reconcile %q error: %v", candidate, err)
		http.Error(w, "failed to resolve district", http.StatusInternalServerError)
		return
	}
	if matched {
		h.metrics.ReconcileTotal.WithLabelValues("matched").Inc()
	} else {
		h.metrics.ReconcileTotal.WithLabelValues("fallback").Inc()
	}
	writeJSON(w, map[string]string{"district": name})
}
