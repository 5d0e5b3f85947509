package services

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

type statementQueryService struct{}

// NewStatementQueryService creates a new StatementQueryServiceInterface instance
func NewStatementQueryService() StatementQueryServiceInterface {
	return &statementQueryService{}
}

// Filter applies the predicate set with AND semantics. Absent predicate
// fields match everything; input order is preserved.
func (s *statementQueryService) Filter(statements []models.Statement, filters models.StatementFilters) []models.Statement {
	filtered := make([]models.Statement, 0, len(statements))

	for i := range statements {
		if s.matches(&statements[i], &filters) {
			filtered = append(filtered, statements[i])
		}
	}

	return filtered
}

func (s *statementQueryService) matches(statement *models.Statement, filters *models.StatementFilters) bool {
	if filters.CardID != nil && statement.CardID != *filters.CardID {
		return false
	}
	if filters.PeriodKey != "" && statement.PeriodKey() != filters.PeriodKey {
		return false
	}
	if filters.StatusKind != "" && statement.Status.Kind != filters.StatusKind {
		return false
	}
	if filters.MinAmount != nil && statement.TotalAmount.LessThan(*filters.MinAmount) {
		return false
	}
	if filters.MaxAmount != nil && statement.TotalAmount.GreaterThan(*filters.MaxAmount) {
		return false
	}
	return true
}

// Summarize folds a statement collection into portfolio-level counters.
// Empty input yields an all-zero summary, never an error.
func (s *statementQueryService) Summarize(statements []models.Statement) models.StatementSummary {
	summary := models.StatementSummary{
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
	}

	for i := range statements {
		statement := &statements[i]

		summary.TotalStatements++
		summary.TotalAmount = summary.TotalAmount.Add(statement.TotalAmount)

		switch statement.Status.Kind {
		case models.StatusOverdue:
			summary.OverdueCount++
		case models.StatusDueSoon:
			summary.DueSoonCount++
		case models.StatusCurrent:
			summary.CurrentCount++
		}
	}

	if summary.TotalStatements > 0 {
		summary.AverageAmount = summary.TotalAmount.Div(decimal.NewFromInt(int64(summary.TotalStatements)))
	}

	return summary
}
