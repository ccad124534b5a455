package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/judgematch/internal/match"
)

// ResolveHandler serves lookups against the shared index store.
type ResolveHandler struct {
	Store *match.Store
}

// ResolveResponse is the JSON shape of a resolution result. JudgeName is
// empty when Matched is false; callers must not treat an unmatched response
// as a default identity.
type ResolveResponse struct {
	Name       string `json:"name"`
	Year       int    `json:"year,omitempty"`
	CourtNum   int    `json:"court_num,omitempty"`
	CircuitNum int    `json:"circuit_num,omitempty"`
	Matched    bool   `json:"matched"`
	JudgeName  string `json:"judge_name,omitempty"`
}

// Resolve handles GET /api/resolve?name=...&year=...&court=...&circuit=...
// The year, court and circuit parameters are optional context; layers
// keyed on absent context are skipped.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name parameter is required", http.StatusBadRequest)
		return
	}

	q := match.Query{
		Name:       name,
		Year:       intParam(r, "year"),
		CourtNum:   intParam(r, "court"),
		CircuitNum: intParam(r, "circuit"),
	}

	resp := ResolveResponse{
		Name:       q.Name,
		Year:       q.Year,
		CourtNum:   q.CourtNum,
		CircuitNum: q.CircuitNum,
	}
	resp.JudgeName, resp.Matched = h.Store.Resolve(q)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// StatsResponse reports the entry count of each index layer, most specific
// first.
type StatsResponse struct {
	Layers [5]int `json:"layers"`
}

// Stats handles GET /api/stats
func (h *ResolveHandler) Stats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{Layers: h.Store.Index().Len()}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// intParam parses an optional positive integer query parameter, returning 0
// when absent or malformed.
func intParam(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
