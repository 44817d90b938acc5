// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsight/backend/internal/application/usecase/analytics"
	"github.com/finsight/backend/internal/integration/entrypoint/dto"
	"github.com/finsight/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	getOverviewUseCase *analytics.GetOverviewUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getOverviewUseCase *analytics.GetOverviewUseCase) *AnalyticsController {
	return &AnalyticsController{
		getOverviewUseCase: getOverviewUseCase,
	}
}

// GetOverview handles GET /analytics/overview requests. An optional
// as_of=YYYY-MM-DD query parameter fixes the evaluation instant; it
// defaults to now.
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	overview, ok := c.overviewFor(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// GetForecast handles GET /analytics/forecast requests.
func (c *AnalyticsController) GetForecast(ctx *gin.Context) {
	overview, ok := c.overviewFor(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPredictionResponse(overview.Prediction))
}

// GetHealthScore handles GET /analytics/health-score requests.
func (c *AnalyticsController) GetHealthScore(ctx *gin.Context) {
	overview, ok := c.overviewFor(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(overview.HealthScore))
}

// GetInsights handles GET /analytics/insights requests.
func (c *AnalyticsController) GetInsights(ctx *gin.Context) {
	overview, ok := c.overviewFor(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"insights": dto.ToInsightResponses(overview.Insights)})
}

// overviewFor runs the overview use case for the authenticated user. The
// sub-resource endpoints reuse it because every view derives from the
// same computation, which the cache already memoizes per user and month.
func (c *AnalyticsController) overviewFor(ctx *gin.Context) (*analytics.Overview, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return nil, false
	}

	asOf := time.Now().UTC()
	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		parsed, err := time.Parse(time.DateOnly, asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "as_of must be formatted as YYYY-MM-DD"})
			return nil, false
		}
		asOf = parsed
	}

	overview, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), analytics.GetOverviewInput{
		UserID: userID,
		AsOf:   asOf,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute analytics overview"})
		return nil, false
	}
	return overview, true
}
