// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finsight/backend/config"
	"github.com/finsight/backend/internal/application/adapter"
	"github.com/finsight/backend/internal/application/usecase/analytics"
	"github.com/finsight/backend/internal/application/usecase/planner"
	"github.com/finsight/backend/internal/application/usecase/record"
	"github.com/finsight/backend/internal/infra/server/router"
	"github.com/finsight/backend/internal/integration/adapters"
	"github.com/finsight/backend/internal/integration/entrypoint/controller"
	"github.com/finsight/backend/internal/integration/entrypoint/middleware"
	"github.com/finsight/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// db may be nil; record and analytics endpoints are skipped in that case and
// only the stateless planner and health endpoints are served. redisClient may
// also be nil; the overview cache is skipped and every overview request is
// computed from the database.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create adapters/services
	tokenVerifier := adapters.NewTokenVerifier(cfg.JWT.Secret)
	var overviewCache adapter.OverviewCache
	if redisClient != nil {
		overviewCache = adapters.NewRedisOverviewCache(redisClient)
	}

	var recordController *controller.RecordController
	var analyticsController *controller.AnalyticsController
	if db != nil {
		incomeRepo := persistence.NewIncomeRepository(db)
		expenseRepo := persistence.NewExpenseRepository(db)

		addIncomeUseCase := record.NewAddIncomeUseCase(incomeRepo, overviewCache)
		addExpenseUseCase := record.NewAddExpenseUseCase(expenseRepo, overviewCache)
		deleteIncomeUseCase := record.NewDeleteIncomeUseCase(incomeRepo, overviewCache)
		deleteExpenseUseCase := record.NewDeleteExpenseUseCase(expenseRepo, overviewCache)
		listRecordsUseCase := record.NewListRecordsUseCase(incomeRepo, expenseRepo)
		getOverviewUseCase := analytics.NewGetOverviewUseCase(incomeRepo, expenseRepo, overviewCache)

		recordController = controller.NewRecordController(
			addIncomeUseCase,
			addExpenseUseCase,
			deleteIncomeUseCase,
			deleteExpenseUseCase,
			listRecordsUseCase,
		)
		analyticsController = controller.NewAnalyticsController(getOverviewUseCase)
	}

	planPurchaseUseCase := planner.NewPlanPurchaseUseCase()

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			if db == nil {
				return false
			}
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			return redisClient.Ping(context.Background()).Err() == nil
		},
	)
	plannerController := controller.NewPlannerController(planPurchaseUseCase)

	// Create middleware
	// Use a higher planner budget for E2E/test environments to prevent flaky tests
	var plannerRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		plannerRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		plannerRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier)

	// Create router
	r := router.NewRouter(healthController, recordController, analyticsController, plannerController, plannerRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
