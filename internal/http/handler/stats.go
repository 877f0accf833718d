package handler

import (
	"net/http"

	"github.com/jaekwang-park/compliance-api/internal/service"
)

// StatsHandler serves the per-user dashboard at /api/v1/stats.
type StatsHandler struct {
	svc *service.ChecklistService
}

func NewStatsHandler(svc *service.ChecklistService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only GET is allowed")
		return
	}

	stats, err := h.svc.DashboardStats(r.Context(), getUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"stats": stats})
}
