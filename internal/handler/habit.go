package handler

import (
	"log/slog"
	"net/http"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/service"
)

type HabitHandler struct {
	habitService *service.HabitService
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

type createHabitRequest struct {
	PillarID  string `json:"pillar_id"`
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createHabitRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	habit, err := h.habitService.Create(user.ID, req.PillarID, req.Name, req.Frequency)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("habit created", "user_id", user.ID, "habit_id", habit.ID, "pillar_id", habit.PillarID)
	respondJSON(w, http.StatusCreated, map[string]any{"habit": habit})
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	habits, err := h.habitService.ForUser(user.ID, location(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"habits": habits})
}

type updateHabitRequest struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	var req updateHabitRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	habit, err := h.habitService.Update(user.ID, habitID, req.Name, req.Frequency)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"habit": habit})
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	err := h.habitService.Delete(user.ID, habitID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type bulkImportRequest struct {
	PillarID string                `json:"pillar_id"`
	Habits   []service.HabitImport `json:"habits"`
}

// BulkImport creates many habits at once from a client-parsed spreadsheet.
// Premium only.
func (h *HabitHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req bulkImportRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	imported, err := h.habitService.BulkImport(user, req.PillarID, req.Habits)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("habits imported", "user_id", user.ID, "pillar_id", req.PillarID, "count", imported)
	respondJSON(w, http.StatusCreated, map[string]int{"imported": imported})
}
