package handler

import (
	"net/http"
	"time"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/service"
)

const defaultHeatmapDays = 365

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Heatmap returns per-day commit counts for a pillar. Bounds come from
// optional start/end query params (YYYY-MM-DD, interpreted in the caller's
// timezone) and default to the trailing year. Premium only.
func (h *AnalyticsHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pillarID := r.PathValue("id")
	loc := location(r)

	end := time.Now().In(loc)
	start := end.AddDate(0, 0, -defaultHeatmapDays)

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, loc)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD")
			return
		}
		start = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, loc)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
			return
		}
		end = t
	}

	if end.Before(start) {
		respondError(w, http.StatusBadRequest, "end date is before start date")
		return
	}

	days, err := h.analyticsService.Heatmap(user, pillarID, start, end, loc)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"days": days})
}

func (h *AnalyticsHandler) UserStreaks(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	streak, err := h.analyticsService.UserStreaks(user.ID, location(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, streak)
}

func (h *AnalyticsHandler) PillarStreaks(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pillarID := r.PathValue("id")

	streak, err := h.analyticsService.PillarStreaks(user.ID, pillarID, location(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, streak)
}

func (h *AnalyticsHandler) HabitStreaks(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	streak, err := h.analyticsService.HabitStreaks(user.ID, habitID, location(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, streak)
}
