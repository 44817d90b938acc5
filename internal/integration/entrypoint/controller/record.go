package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/application/usecase/record"
	"github.com/finsight/backend/internal/domain/entity"
	domainerror "github.com/finsight/backend/internal/domain/error"
	"github.com/finsight/backend/internal/integration/entrypoint/dto"
	"github.com/finsight/backend/internal/integration/entrypoint/middleware"
)

// RecordController handles income/expense record endpoints.
type RecordController struct {
	addIncomeUseCase     *record.AddIncomeUseCase
	addExpenseUseCase    *record.AddExpenseUseCase
	deleteIncomeUseCase  *record.DeleteIncomeUseCase
	deleteExpenseUseCase *record.DeleteExpenseUseCase
	listRecordsUseCase   *record.ListRecordsUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	addIncomeUseCase *record.AddIncomeUseCase,
	addExpenseUseCase *record.AddExpenseUseCase,
	deleteIncomeUseCase *record.DeleteIncomeUseCase,
	deleteExpenseUseCase *record.DeleteExpenseUseCase,
	listRecordsUseCase *record.ListRecordsUseCase,
) *RecordController {
	return &RecordController{
		addIncomeUseCase:     addIncomeUseCase,
		addExpenseUseCase:    addExpenseUseCase,
		deleteIncomeUseCase:  deleteIncomeUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
		listRecordsUseCase:   listRecordsUseCase,
	}
}

// AddIncome handles POST /records/incomes requests.
func (c *RecordController) AddIncome(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.AddIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date must be formatted as YYYY-MM-DD"})
		return
	}

	income, err := c.addIncomeUseCase.Execute(ctx.Request.Context(), record.AddIncomeInput{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
		Source: req.Source,
		Date:   date,
	})
	if err != nil {
		respondRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// AddExpense handles POST /records/expenses requests.
func (c *RecordController) AddExpense(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date must be formatted as YYYY-MM-DD"})
		return
	}

	expense, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), record.AddExpenseInput{
		UserID:        userID,
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      entity.ExpenseCategory(req.Category),
		Description:   req.Description,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		respondRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// DeleteIncome handles DELETE /records/incomes/:id requests.
func (c *RecordController) DeleteIncome(ctx *gin.Context) {
	c.deleteRecord(ctx, func(userID, id uuid.UUID) error {
		return c.deleteIncomeUseCase.Execute(ctx.Request.Context(), userID, id)
	})
}

// DeleteExpense handles DELETE /records/expenses/:id requests.
func (c *RecordController) DeleteExpense(ctx *gin.Context) {
	c.deleteRecord(ctx, func(userID, id uuid.UUID) error {
		return c.deleteExpenseUseCase.Execute(ctx.Request.Context(), userID, id)
	})
}

// List handles GET /records requests.
func (c *RecordController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	output, err := c.listRecordsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list records"})
		return
	}

	response := dto.RecordListResponse{
		Incomes:  make([]dto.IncomeResponse, len(output.Incomes)),
		Expenses: make([]dto.ExpenseResponse, len(output.Expenses)),
	}
	for i, income := range output.Incomes {
		response.Incomes[i] = dto.ToIncomeResponse(income)
	}
	for i, expense := range output.Expenses {
		response.Expenses[i] = dto.ToExpenseResponse(expense)
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *RecordController) deleteRecord(ctx *gin.Context, del func(userID, id uuid.UUID) error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid record ID"})
		return
	}

	if err := del(userID, id); err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) || errors.Is(err, domainerror.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Record not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete record"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func respondRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
