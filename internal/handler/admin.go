package handler

import (
	"log/slog"
	"net/http"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/service"
)

type AdminHandler struct {
	userService    *service.UserService
	billingService *service.BillingService
}

func NewAdminHandler(userService *service.UserService, billingService *service.BillingService) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		billingService: billingService,
	}
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	requester := ctxkeys.User(r.Context())

	users, err := h.userService.All(requester)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"users": users})
}

// ToggleRole flips a user between USER and ADMIN. Admins cannot demote
// themselves.
func (h *AdminHandler) ToggleRole(w http.ResponseWriter, r *http.Request) {
	requester := ctxkeys.User(r.Context())
	targetID := r.PathValue("id")

	err := h.userService.ToggleRole(requester, targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("user role toggled", "admin_id", requester.ID, "target_id", targetID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) TogglePremium(w http.ResponseWriter, r *http.Request) {
	requester := ctxkeys.User(r.Context())
	targetID := r.PathValue("id")

	err := h.userService.TogglePremium(requester, targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("user premium toggled", "admin_id", requester.ID, "target_id", targetID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteUser removes a user and all their data. Admins cannot delete
// themselves.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	requester := ctxkeys.User(r.Context())
	targetID := r.PathValue("id")

	err := h.userService.DeleteUser(requester, targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("user deleted", "admin_id", requester.ID, "target_id", targetID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Overview returns payment history and aggregate user/revenue counts.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	requester := ctxkeys.User(r.Context())

	overview, err := h.billingService.Overview(requester)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}
