package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dueDateLayout = "2006-01-02"

// paramError carries the error code and detail for a rejected query parameter.
type paramError struct {
	code    apierrors.ErrorCode
	details string
}

func (e *paramError) Error() string { return e.details }

// StatementHandler exposes the statement engine over HTTP. The engine itself
// is pure; this handler is the boundary where the reference time is read and
// where input collections are loaded from the repositories.
type StatementHandler struct {
	cardRepo           repositories.CardRepositoryInterface
	transactionRepo    repositories.TransactionRepositoryInterface
	aggregationService services.StatementAggregationServiceInterface
	statisticsService  services.StatementStatisticsServiceInterface
	comparisonService  services.StatementComparisonServiceInterface
	queryService       services.StatementQueryServiceInterface
	draftValidator     services.StatementValidatorInterface
	nowFunc            func() time.Time
}

func NewStatementHandler(
	cardRepo repositories.CardRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	aggregationService services.StatementAggregationServiceInterface,
	statisticsService services.StatementStatisticsServiceInterface,
	comparisonService services.StatementComparisonServiceInterface,
	queryService services.StatementQueryServiceInterface,
	draftValidator services.StatementValidatorInterface,
) *StatementHandler {
	return &StatementHandler{
		cardRepo:           cardRepo,
		transactionRepo:    transactionRepo,
		aggregationService: aggregationService,
		statisticsService:  statisticsService,
		comparisonService:  comparisonService,
		queryService:       queryService,
		draftValidator:     draftValidator,
		nowFunc:            time.Now,
	}
}

// WithNowFunc overrides the reference-time source, used by tests for
// deterministic classification.
func (h *StatementHandler) WithNowFunc(nowFunc func() time.Time) *StatementHandler {
	h.nowFunc = nowFunc
	return h
}

// statementsPayload is the response body for GET /statements
type statementsPayload struct {
	Statements []models.Statement          `json:"statements"`
	Summary    models.StatementSummary     `json:"summary"`
	Skipped    []models.SkippedTransaction `json:"skipped,omitempty"`
}

// GetStatements aggregates all transactions into statements and applies the
// optional query filters.
//
// Method: GET /api/v1/statements
//
// Query parameters:
//   - cardId: UUID, equality filter (optional)
//   - period: year-month of due date, e.g. 2025-01 (optional)
//   - status: lifecycle status kind (optional)
//   - minAmount / maxAmount: inclusive total-amount range (optional)
func (h *StatementHandler) GetStatements(c echo.Context) error {
	filters, err := h.parseFilters(c)
	if err != nil {
		return h.sendParamError(c, err)
	}

	statements, skipped, err := h.aggregateAll()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	filtered := h.queryService.Filter(statements, filters)
	summary := h.queryService.Summarize(filtered)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: statementsPayload{
			Statements: filtered,
			Summary:    summary,
			Skipped:    skipped,
		},
	})
}

// GetStatementStatistics computes descriptive statistics for one statement.
//
// Method: GET /api/v1/statements/statistics
//
// Query parameters:
//   - cardId: UUID (required)
//   - dueDate: YYYY-MM-DD due date of the statement (required)
func (h *StatementHandler) GetStatementStatistics(c echo.Context) error {
	cardID, dueDate, err := h.parseStatementKey(c)
	if err != nil {
		return h.sendParamError(c, err)
	}

	statements, _, err := h.aggregateAll()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	statement := findStatement(statements, cardID, dueDate)
	if statement == nil {
		return SendError(c, apierrors.StatementNotFound)
	}

	statistics := h.statisticsService.ComputeStatistics(statement)
	if statistics == nil {
		return SendError(c, apierrors.StatementNotFound, apierrors.WithDetails("statement has no transactions"))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: statistics,
	})
}

// GetStatementComparison compares a statement with the card's closest earlier
// statement.
//
// Method: GET /api/v1/statements/comparison
//
// Query parameters:
//   - cardId: UUID (required)
//   - dueDate: YYYY-MM-DD due date of the later statement (required)
func (h *StatementHandler) GetStatementComparison(c echo.Context) error {
	cardID, dueDate, err := h.parseStatementKey(c)
	if err != nil {
		return h.sendParamError(c, err)
	}

	statements, _, err := h.aggregateAll()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	later := findStatement(statements, cardID, dueDate)
	if later == nil {
		return SendError(c, apierrors.StatementNotFound)
	}

	earlier := findPreviousStatement(statements, cardID, dueDate)
	if earlier == nil {
		return SendError(c, apierrors.StatementNoPriorPeriod)
	}

	comparison := h.comparisonService.Compare(earlier, later)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: comparison,
	})
}

// ValidateStatementDraft validates a manually drafted statement.
//
// Method: POST /api/v1/statements/validate
//
// Body: StatementDraft JSON. Always responds 200 with the validation result;
// the caller decides whether a failed result blocks acceptance.
func (h *StatementHandler) ValidateStatementDraft(c echo.Context) error {
	var draft models.StatementDraft
	if err := c.Bind(&draft); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("request body must be valid JSON"))
	}

	result := h.draftValidator.ValidateDraft(&draft)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result,
	})
}

func (h *StatementHandler) aggregateAll() ([]models.Statement, []models.SkippedTransaction, error) {
	cards, err := h.cardRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}

	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}

	return h.aggregationService.Aggregate(transactions, cards, h.nowFunc())
}

func (h *StatementHandler) parseFilters(c echo.Context) (models.StatementFilters, error) {
	var filters models.StatementFilters

	if cardIDParam := c.QueryParam("cardId"); cardIDParam != "" {
		cardID, err := uuid.Parse(cardIDParam)
		if err != nil {
			return filters, &paramError{code: apierrors.CardInvalidID, details: "invalid cardId format"}
		}
		filters.CardID = &cardID
	}

	filters.PeriodKey = c.QueryParam("period")
	filters.StatusKind = c.QueryParam("status")

	if minParam := c.QueryParam("minAmount"); minParam != "" {
		minAmount, err := decimal.NewFromString(minParam)
		if err != nil {
			return filters, &paramError{code: apierrors.ValidationInvalidFormat, details: "invalid minAmount format"}
		}
		filters.MinAmount = &minAmount
	}

	if maxParam := c.QueryParam("maxAmount"); maxParam != "" {
		maxAmount, err := decimal.NewFromString(maxParam)
		if err != nil {
			return filters, &paramError{code: apierrors.ValidationInvalidFormat, details: "invalid maxAmount format"}
		}
		filters.MaxAmount = &maxAmount
	}

	return filters, nil
}

func (h *StatementHandler) parseStatementKey(c echo.Context) (uuid.UUID, time.Time, error) {
	cardIDParam := c.QueryParam("cardId")
	if cardIDParam == "" {
		return uuid.Nil, time.Time{}, &paramError{code: apierrors.ValidationRequiredField, details: "cardId is required"}
	}

	cardID, err := uuid.Parse(cardIDParam)
	if err != nil {
		return uuid.Nil, time.Time{}, &paramError{code: apierrors.CardInvalidID, details: "invalid cardId format"}
	}

	dueDateParam := c.QueryParam("dueDate")
	if dueDateParam == "" {
		return uuid.Nil, time.Time{}, &paramError{code: apierrors.ValidationRequiredField, details: "dueDate is required"}
	}

	dueDate, err := time.Parse(dueDateLayout, dueDateParam)
	if err != nil {
		return uuid.Nil, time.Time{}, &paramError{code: apierrors.ValidationInvalidDate, details: "invalid dueDate format, expected YYYY-MM-DD"}
	}

	return cardID, dueDate, nil
}

func (h *StatementHandler) sendParamError(c echo.Context, err error) error {
	var pe *paramError
	if errors.As(err, &pe) {
		return SendError(c, pe.code, apierrors.WithDetails(pe.details))
	}
	return SendSystemError(c, err)
}

func (h *StatementHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidCycleConfig) {
		return SendError(c, apierrors.CardInvalidCycleConfig, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, repositories.ErrCardNotFound) {
		return SendError(c, apierrors.CardNotFound)
	}

	if errors.Is(err, repositories.ErrDatabase) {
		return SendDatabaseError(c, err)
	}

	return SendSystemError(c, err)
}

func findStatement(statements []models.Statement, cardID uuid.UUID, dueDate time.Time) *models.Statement {
	for i := range statements {
		if statements[i].CardID == cardID && statements[i].DueDate.Equal(dueDate) {
			return &statements[i]
		}
	}
	return nil
}

// findPreviousStatement returns the card's statement with the latest due date
// strictly before the given one.
func findPreviousStatement(statements []models.Statement, cardID uuid.UUID, dueDate time.Time) *models.Statement {
	var previous *models.Statement
	for i := range statements {
		statement := &statements[i]
		if statement.CardID != cardID || !statement.DueDate.Before(dueDate) {
			continue
		}
		if previous == nil || statement.DueDate.After(previous.DueDate) {
			previous = statement
		}
	}
	return previous
}
