package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight/backend/internal/application/usecase/planner"
	domainerror "github.com/finsight/backend/internal/domain/error"
	"github.com/finsight/backend/internal/integration/entrypoint/dto"
)

// PlannerController handles purchase-planner endpoints.
type PlannerController struct {
	planPurchaseUseCase *planner.PlanPurchaseUseCase
}

// NewPlannerController creates a new planner controller instance.
func NewPlannerController(planPurchaseUseCase *planner.PlanPurchaseUseCase) *PlannerController {
	return &PlannerController{
		planPurchaseUseCase: planPurchaseUseCase,
	}
}

// PlanPurchase handles POST /planner/purchase requests.
func (c *PlannerController) PlanPurchase(ctx *gin.Context) {
	var req dto.PlanPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	profile, details := req.ToEntities()
	plan, err := c.planPurchaseUseCase.Execute(ctx.Request.Context(), planner.PlanPurchaseInput{
		Profile: profile,
		Details: details,
	})
	if err != nil {
		var plannerErr *domainerror.PlannerError
		if errors.As(err, &plannerErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: plannerErr.Message,
				Code:  string(plannerErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to run purchase simulation"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchasePlanResponse(plan))
}
