package handler

import (
	"log/slog"
	"net/http"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/service"
	"github.com/marwanbukhori/commit-life/internal/validation"
)

type CommitHandler struct {
	commitService *service.CommitService
	pillarService *service.PillarService
}

func NewCommitHandler(commitService *service.CommitService, pillarService *service.PillarService) *CommitHandler {
	return &CommitHandler{
		commitService: commitService,
		pillarService: pillarService,
	}
}

type commitRequest struct {
	Remark string `json:"remark"`
}

// Commit records a habit completion. Re-committing within the habit's current
// period is a no-op and returns the habit unchanged.
func (h *CommitHandler) Commit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	var req commitRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = validation.ValidateRemark(req.Remark)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	habit, err := h.commitService.Commit(user.ID, habitID, req.Remark, location(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Return the companion alongside so clients can animate level-ups
	// without a second round trip.
	companion, err := h.pillarService.CompanionByPillar(user.ID, habit.PillarID)
	if err != nil {
		slog.Warn("failed to load companion after commit", "error", err, "pillar_id", habit.PillarID)
		companion = nil
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"habit":     habit,
		"companion": companion,
	})
}
