// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finsight/backend/internal/integration/entrypoint/controller"
	"github.com/finsight/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	recordController    *controller.RecordController
	analyticsController *controller.AnalyticsController
	plannerController   *controller.PlannerController
	plannerRateLimiter  *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	analyticsController *controller.AnalyticsController,
	plannerController *controller.PlannerController,
	plannerRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		recordController:    recordController,
		analyticsController: analyticsController,
		plannerController:   plannerController,
		plannerRateLimiter:  plannerRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Record routes (require authentication)
		if r.recordController != nil && r.authMiddleware != nil {
			records := v1.Group("/records")
			records.Use(r.authMiddleware.Authenticate())
			{
				records.GET("", r.recordController.List)
				records.POST("/incomes", r.recordController.AddIncome)
				records.DELETE("/incomes/:id", r.recordController.DeleteIncome)
				records.POST("/expenses", r.recordController.AddExpense)
				records.DELETE("/expenses/:id", r.recordController.DeleteExpense)
			}
		}

		// Analytics routes (require authentication)
		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/overview", r.analyticsController.GetOverview)
				analytics.GET("/forecast", r.analyticsController.GetForecast)
				analytics.GET("/health-score", r.analyticsController.GetHealthScore)
				analytics.GET("/insights", r.analyticsController.GetInsights)
			}
		}

		// Planner routes (require authentication)
		if r.plannerController != nil && r.authMiddleware != nil {
			planner := v1.Group("/planner")
			planner.Use(r.authMiddleware.Authenticate())
			if r.plannerRateLimiter != nil {
				planner.Use(r.plannerRateLimiter.Middleware())
			}
			{
				planner.POST("/purchase", r.plannerController.PlanPurchase)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
