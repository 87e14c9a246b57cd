package handler

import (
	"net/http"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/service"
)

type DashboardHandler struct {
	pillarService *service.PillarService
	userService   *service.UserService
}

func NewDashboardHandler(pillarService *service.PillarService, userService *service.UserService) *DashboardHandler {
	return &DashboardHandler{
		pillarService: pillarService,
		userService:   userService,
	}
}

// Dashboard returns the full garden view: the user's title and every pillar
// with its companion and habits, completion computed for the caller's timezone.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	loc := location(r)

	pillars, err := h.pillarService.Pillars(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	details := make([]*service.PillarDetails, 0, len(pillars))
	for _, pillar := range pillars {
		d, err := h.pillarService.Details(user.ID, pillar.ID, loc)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		details = append(details, d)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"garden_title": user.GardenTitle,
		"pillars":      details,
	})
}

type gardenTitleRequest struct {
	Title string `json:"title"`
}

func (h *DashboardHandler) UpdateGardenTitle(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req gardenTitleRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.userService.UpdateGardenTitle(user.ID, req.Title)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"garden_title": req.Title})
}
