package routes

import (
	"net/http"

	"github.com/marwanbukhori/commit-life/internal/app"
	"github.com/marwanbukhori/commit-life/internal/handler"
	"github.com/marwanbukhori/commit-life/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	dashboard := handler.NewDashboardHandler(app.PillarService, app.UserService)
	pillar := handler.NewPillarHandler(app.PillarService)
	habit := handler.NewHabitHandler(app.HabitService)
	commit := handler.NewCommitHandler(app.CommitService, app.PillarService)
	analytics := handler.NewAnalyticsHandler(app.AnalyticsService)
	admin := handler.NewAdminHandler(app.UserService, app.BillingService)
	billing := handler.NewBillingHandler(app.PaymentProvider, app.BillingService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/signup", rateLimiter(middleware.RequireGuest(auth.Signup)))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// Payment provider callbacks (signature verified, no session)
	mux.HandleFunc("POST /api/webhooks/payment", billing.Webhook)

	// ============================================================================
	// AUTHENTICATED ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/me", middleware.RequireAuth(auth.Me))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Dashboard))
	mux.HandleFunc("PATCH /api/garden-title", middleware.RequireAuth(dashboard.UpdateGardenTitle))

	// Pillars
	mux.HandleFunc("POST /api/pillars", middleware.RequireAuth(pillar.Create))
	mux.HandleFunc("GET /api/pillars", middleware.RequireAuth(pillar.List))
	mux.HandleFunc("GET /api/pillars/{id}", middleware.RequireAuth(pillar.Detail))
	mux.HandleFunc("PATCH /api/pillars/{id}", middleware.RequireAuth(pillar.Update))
	mux.HandleFunc("DELETE /api/pillars/{id}", middleware.RequireAuth(pillar.Delete))

	// Habits
	mux.HandleFunc("POST /api/habits", middleware.RequireAuth(habit.Create))
	mux.HandleFunc("GET /api/habits", middleware.RequireAuth(habit.List))
	mux.HandleFunc("PATCH /api/habits/{id}", middleware.RequireAuth(habit.Update))
	mux.HandleFunc("DELETE /api/habits/{id}", middleware.RequireAuth(habit.Delete))
	mux.HandleFunc("POST /api/habits/import", middleware.RequireAuth(habit.BulkImport))

	// Commits
	mux.HandleFunc("POST /api/habits/{id}/commit", middleware.RequireAuth(commit.Commit))

	// Analytics
	mux.HandleFunc("GET /api/streaks", middleware.RequireAuth(analytics.UserStreaks))
	mux.HandleFunc("GET /api/pillars/{id}/streaks", middleware.RequireAuth(analytics.PillarStreaks))
	mux.HandleFunc("GET /api/pillars/{id}/heatmap", middleware.RequireAuth(analytics.Heatmap))
	mux.HandleFunc("GET /api/habits/{id}/streaks", middleware.RequireAuth(analytics.HabitStreaks))

	// Billing
	mux.HandleFunc("POST /api/billing/checkout", middleware.RequireAuth(billing.Checkout))
	mux.HandleFunc("POST /api/billing/complete", middleware.RequireAuth(billing.Complete))

	// ============================================================================
	// ADMIN ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(admin.Users))
	mux.HandleFunc("POST /api/admin/users/{id}/role", middleware.RequireAdmin(admin.ToggleRole))
	mux.HandleFunc("POST /api/admin/users/{id}/premium", middleware.RequireAdmin(admin.TogglePremium))
	mux.HandleFunc("DELETE /api/admin/users/{id}", middleware.RequireAdmin(admin.DeleteUser))
	mux.HandleFunc("GET /api/admin/overview", middleware.RequireAdmin(admin.Overview))

	// Global middleware (first in the list runs first)
	return middleware.Chain(mux,
		middleware.Config(app.Cfg),
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
		middleware.Timezone,
		middleware.RequestLogging,
	)
}
