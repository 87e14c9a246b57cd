package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/marwanbukhori/commit-life/internal/config"
	"github.com/marwanbukhori/commit-life/internal/db"
	"github.com/marwanbukhori/commit-life/internal/repository"
	"github.com/marwanbukhori/commit-life/internal/service"
	"github.com/marwanbukhori/commit-life/internal/service/payment"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	UserService      *service.UserService
	PillarService    *service.PillarService
	HabitService     *service.HabitService
	CommitService    *service.CommitService
	AnalyticsService *service.AnalyticsService
	BillingService   *service.BillingService
	PaymentProvider  payment.Provider
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	pillarRepository := repository.NewPillarRepository(database)
	habitRepository := repository.NewHabitRepository(database)
	companionRepository := repository.NewCompanionRepository(database)
	commitLogRepository := repository.NewCommitLogRepository(database)
	commitRepository := repository.NewCommitRepository(database)
	paymentRepository := repository.NewPaymentRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository)
	pillarService := service.NewPillarService(pillarRepository, companionRepository, habitRepository)
	habitService := service.NewHabitService(habitRepository, pillarRepository)
	commitService := service.NewCommitService(commitRepository)
	analyticsService := service.NewAnalyticsService(commitLogRepository, pillarRepository, habitRepository)
	billingService := service.NewBillingService(paymentRepository, userRepository)

	// Initialize payment provider based on config
	paymentProvider, err := payment.NewProvider(cfg, billingService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %v", err)
	}

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		UserService:      userService,
		PillarService:    pillarService,
		HabitService:     habitService,
		CommitService:    commitService,
		AnalyticsService: analyticsService,
		BillingService:   billingService,
		PaymentProvider:  paymentProvider,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
