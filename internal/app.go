// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "cardledger/internal/api"
	"cardledger/internal/api/handler"
	"cardledger/internal/cache"
	"cardledger/internal/config"
	"cardledger/internal/domain"
	"cardledger/internal/repository"
	"cardledger/internal/repository/postgres"
	"cardledger/internal/service"
	"cardledger/internal/util"
	"cardledger/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	TransactionRepository repository.TransactionRepository
	MerchantRepository    repository.MerchantRepository

	// Shared state
	BalanceCache *cache.BalanceCache

	// Services
	UserService        service.UserService
	TransactionService service.TransactionService
	MerchantService    service.MerchantService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components. The passed context must
// outlive initialization: balance cache hydration runs on it.
func (app *Application) Initialize(ctx context.Context) error {
	util.InitLogger()
	app.Logger = util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.MerchantRepository = postgres.NewMerchantRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// Kick off balance cache hydration once. Readers block until the scan
	// completes; the snapshot is never refreshed afterwards.
	app.BalanceCache = cache.Hydrate(ctx, app.Logger, func(ctx context.Context) ([]domain.OwnerBalance, error) {
		return app.TransactionRepository.SumAmountsByOwner(ctx, app.DB)
	})
	app.Logger.Info("Balance cache hydration started.")

	txManager := postgres.NewTxManager(app.DB)
	app.UserService = service.NewUserService(txManager, app.UserRepository)
	app.TransactionService = service.NewTransactionService(app.DB, app.TransactionRepository, app.BalanceCache)
	app.MerchantService = service.NewMerchantService(app.DB, app.MerchantRepository)
	app.Logger.Info("Services initialized.")

	userHandler := handler.NewUserHandler(app.UserService, app.TransactionService, app.Logger)
	merchantHandler := handler.NewMerchantHandler(app.MerchantService, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, merchantHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
