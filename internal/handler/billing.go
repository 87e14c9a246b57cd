package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/service"
	"github.com/marwanbukhori/commit-life/internal/service/payment"
)

type BillingHandler struct {
	provider       payment.Provider
	billingService *service.BillingService
}

func NewBillingHandler(provider payment.Provider, billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{
		provider:       provider,
		billingService: billingService,
	}
}

type checkoutRequest struct {
	Plan string `json:"plan"`
}

// Checkout creates a hosted checkout session and returns its URL.
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req checkoutRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan := req.Plan
	if plan != model.PlanAnnually {
		plan = model.PlanMonthly
	}

	url, err := h.provider.CreateCheckoutURL(user.ID, user.Email, plan)
	if err != nil {
		slog.Error("failed to create checkout", "error", err, "user_id", user.ID, "provider", h.provider.Name())
		respondError(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Webhook receives provider callbacks. Signature verification happens inside
// the provider; a failed verification is a 400 so the provider retries are
// not suppressed by a false 200.
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read payload")
		return
	}

	err = h.provider.HandleWebhook(payload, r.Header)
	if err != nil {
		slog.Error("webhook processing failed", "error", err, "provider", h.provider.Name())
		respondError(w, http.StatusBadRequest, "webhook processing failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

type completePurchaseRequest struct {
	Reference   string `json:"reference"`
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
	Plan        string `json:"plan"`
}

// Complete records a purchase captured client-side (PayPal order approval
// flow). The reference is the provider's order ID.
func (h *BillingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req completePurchaseRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Reference == "" {
		respondError(w, http.StatusBadRequest, "reference is required")
		return
	}

	err = h.billingService.CompletePurchase(user.ID, req.Reference, req.AmountCents, req.Currency, req.Plan)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("purchase completed", "user_id", user.ID, "plan", req.Plan)
	respondJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}
