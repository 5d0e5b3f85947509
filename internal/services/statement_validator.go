package services

import (
	"errors"
	"time"

	"fintrack/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const draftDueDateLayout = "2006-01-02"

// Messages for each draft check. Each violated check produces exactly one of
// these, so callers can surface them directly.
const (
	msgDraftRequired     = "statement draft is required"
	msgCardRequired      = "card is required"
	msgDueDateRequired   = "due date is required"
	msgDueDateUnparsable = "due date must be a valid date in YYYY-MM-DD format"
	msgTotalNotPositive  = "total amount must be greater than zero"
	msgNoTransactions    = "statement must contain at least one transaction"
)

type statementValidator struct {
	validate *validator.Validate
	metrics  MetricsRecorderInterface
}

// NewStatementValidator creates a new StatementValidatorInterface instance
func NewStatementValidator(metrics MetricsRecorderInterface) StatementValidatorInterface {
	return &statementValidator{
		validate: validator.New(),
		metrics:  metrics,
	}
}

// ValidateDraft checks a manually drafted statement before acceptance. Every
// violated check contributes a distinct message; the caller decides whether
// the result blocks acceptance.
func (v *statementValidator) ValidateDraft(draft *models.StatementDraft) models.DraftValidationResult {
	if draft == nil {
		v.metrics.IncrementCounter("statement.draft.validated",
			map[string]string{"outcome": "invalid"})
		return models.DraftValidationResult{Valid: false, Errors: []string{msgDraftRequired}}
	}

	messages := make([]string, 0)

	if err := v.validate.Struct(draft); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fieldError := range fieldErrors {
				switch fieldError.Field() {
				case "CardID":
					messages = append(messages, msgCardRequired)
				case "DueDate":
					messages = append(messages, msgDueDateRequired)
				}
			}
		}
	}

	if draft.DueDate != "" {
		if _, err := time.Parse(draftDueDateLayout, draft.DueDate); err != nil {
			messages = append(messages, msgDueDateUnparsable)
		}
	}

	if draft.TotalAmount.LessThanOrEqual(decimal.Zero) {
		messages = append(messages, msgTotalNotPositive)
	}

	if len(draft.Transactions) == 0 {
		messages = append(messages, msgNoTransactions)
	}

	result := models.DraftValidationResult{
		Valid:  len(messages) == 0,
		Errors: messages,
	}

	outcome := "invalid"
	if result.Valid {
		outcome = "valid"
	}
	v.metrics.IncrementCounter("statement.draft.validated",
		map[string]string{"outcome": outcome})

	return result
}
