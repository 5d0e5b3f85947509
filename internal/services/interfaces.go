package services

import (
	"time"

	"fintrack/internal/models"
)

// BillingCycleServiceInterface resolves billing-cycle buckets and classifies
// statement urgency. Both operations are pure: results depend only on the
// arguments, never on a live clock.
type BillingCycleServiceInterface interface {
	// ResolveDueDate maps a transaction date and a card's cycle configuration
	// to the due date of the cycle the purchase belongs to.
	ResolveDueDate(transactionDate time.Time, closingDay, dueDay int) (time.Time, error)

	// Classify maps a due date and an explicit reference time to a lifecycle status.
	Classify(dueDate, now time.Time) models.StatementStatus
}

// StatementAggregationServiceInterface groups purchase transactions into
// per-(card, due date) statements.
type StatementAggregationServiceInterface interface {
	// Aggregate builds statements from the supplied transactions and card
	// catalog, classifying each against the shared reference time. Inputs are
	// never mutated. Transactions referencing an unknown card are skipped and
	// reported in the diagnostics slice.
	Aggregate(transactions []models.Transaction, cards []models.Card, now time.Time) ([]models.Statement, []models.SkippedTransaction, error)
}

// StatementStatisticsServiceInterface derives descriptive statistics from a
// single statement.
type StatementStatisticsServiceInterface interface {
	// ComputeStatistics returns nil for an empty statement.
	ComputeStatistics(statement *models.Statement) *models.StatementStatistics
}

// StatementComparisonServiceInterface compares two statements period over period.
type StatementComparisonServiceInterface interface {
	Compare(earlier, later *models.Statement) models.ComparisonResult
}

// StatementQueryServiceInterface filters and summarizes statement collections.
type StatementQueryServiceInterface interface {
	// Filter applies the predicate set with AND semantics, preserving input order.
	Filter(statements []models.Statement, filters models.StatementFilters) []models.Statement

	// Summarize folds a statement collection into portfolio-level counters.
	Summarize(statements []models.Statement) models.StatementSummary
}

// StatementValidatorInterface validates manually drafted statements before a
// caller accepts them.
type StatementValidatorInterface interface {
	ValidateDraft(draft *models.StatementDraft) models.DraftValidationResult
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
