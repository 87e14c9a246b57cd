package handler

import (
	"log/slog"
	"net/http"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/service"
)

type PillarHandler struct {
	pillarService *service.PillarService
}

func NewPillarHandler(pillarService *service.PillarService) *PillarHandler {
	return &PillarHandler{
		pillarService: pillarService,
	}
}

type createPillarRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	CompanionKind string `json:"companion_kind"`
	CompanionName string `json:"companion_name"`
}

func (h *PillarHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createPillarRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pillar, companion, err := h.pillarService.Create(user, req.Name, req.Description, req.Color, req.CompanionKind, req.CompanionName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("pillar created", "user_id", user.ID, "pillar_id", pillar.ID, "companion_kind", companion.Kind)
	respondJSON(w, http.StatusCreated, map[string]any{
		"pillar":    pillar,
		"companion": companion,
	})
}

func (h *PillarHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	pillars, err := h.pillarService.Pillars(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"pillars": pillars})
}

// Detail returns a pillar with its companion and habits, each habit carrying
// its computed completion status for the caller's timezone.
func (h *PillarHandler) Detail(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pillarID := r.PathValue("id")

	details, err := h.pillarService.Details(user.ID, pillarID, location(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, details)
}

type updatePillarRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (h *PillarHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pillarID := r.PathValue("id")

	var req updatePillarRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pillar, err := h.pillarService.Update(user.ID, pillarID, req.Name, req.Description, req.Color)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"pillar": pillar})
}

func (h *PillarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pillarID := r.PathValue("id")

	err := h.pillarService.Delete(user.ID, pillarID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("pillar deleted", "user_id", user.ID, "pillar_id", pillarID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
