package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/judgematch/internal/etl"
	"github.com/judgematch/internal/match"
)

// RefreshHandler rebuilds the in-memory index from the persisted name-index
// table and swaps it into the shared store. The swap is atomic: concurrent
// resolvers keep reading the old snapshot until the new one is complete.
type RefreshHandler struct {
	DB     *sql.DB
	Store  *match.Store
	Logger *zap.Logger
}

// RefreshResponse reports the rebuilt layer sizes.
type RefreshResponse struct {
	Rows   int    `json:"rows"`
	Layers [5]int `json:"layers"`
}

// Refresh handles POST /api/refresh
func (h *RefreshHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	rows, err := etl.LoadNameRows(h.DB)
	if err != nil {
		h.Logger.Error("index refresh failed", zap.Error(err))
		http.Error(w, "failed to reload name index", http.StatusInternalServerError)
		return
	}

	idx := match.Build(rows)
	h.Store.Swap(idx)

	h.Logger.Info("index refreshed", zap.Int("rows", len(rows)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RefreshResponse{Rows: len(rows), Layers: idx.Len()})
}
