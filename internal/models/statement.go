package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statement lifecycle status kinds, ordered by urgency.
const (
	StatusOverdue      = "overdue"
	StatusDueSoon      = "due_soon"
	StatusUpcomingWeek = "upcoming_week"
	StatusCurrent      = "current"
)

// Status priorities. Higher means more urgent; consumers sort and highlight
// on this ordering, so the values are part of the contract.
const (
	PriorityOverdue      = 4
	PriorityDueSoon      = 3
	PriorityUpcomingWeek = 2
	PriorityCurrent      = 1
)

// StatementStatus classifies a statement's urgency relative to a reference
// time supplied by the caller.
type StatementStatus struct {
	Kind      string `json:"kind"`
	Priority  int    `json:"priority"`
	Label     string `json:"label"`
	ColorHint string `json:"color_hint"`
}

// Statement is the aggregate of one card's purchases due on a single due
// date. It is a value object: recomputed on every aggregation run, never
// persisted, and discarded when the caller is done.
type Statement struct {
	CardID            uuid.UUID       `json:"card_id"`
	CardName          string          `json:"card_name"`
	CardBrand         string          `json:"card_brand"`
	CardColor         string          `json:"card_color,omitempty"`
	DueDate           time.Time       `json:"due_date"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PurchaseCount     int             `json:"purchase_count"`
	TotalInstallments int             `json:"total_installments"`
	Transactions      []Transaction   `json:"transactions"`
	Status            StatementStatus `json:"status"`
}

// PeriodKey returns the year-month key of the statement's due date, used for
// period filtering and period-over-period lookups.
func (s *Statement) PeriodKey() string {
	return s.DueDate.Format("2006-01")
}

// IsEmpty returns true if the statement aggregates no purchases.
func (s *Statement) IsEmpty() bool {
	return len(s.Transactions) == 0
}

// CategoryBreakdown is one category's share of a statement.
type CategoryBreakdown struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// DailyBreakdown is one calendar day's share of a statement.
type DailyBreakdown struct {
	Day    int             `json:"day"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// TemporalDistribution buckets statement amounts by week of month (1..4,
// later days clamp into week 4) and by weekday (0=Sunday..6=Saturday). Both
// maps hold additive amounts, not counts.
type TemporalDistribution struct {
	ByWeekOfMonth map[int]decimal.Decimal `json:"by_week_of_month"`
	ByDayOfWeek   map[int]decimal.Decimal `json:"by_day_of_week"`
}

// StatementStatistics holds the descriptive statistics derived from a single
// statement. Read-only, recomputed per call.
type StatementStatistics struct {
	TotalTransactions    int                  `json:"total_transactions"`
	TotalAmount          decimal.Decimal      `json:"total_amount"`
	AverageAmount        decimal.Decimal      `json:"average_amount"`
	TopCategory          *CategoryBreakdown   `json:"top_category,omitempty"`
	Categories           []CategoryBreakdown  `json:"categories"`
	DailyBreakdown       []DailyBreakdown     `json:"daily_breakdown"`
	TemporalDistribution TemporalDistribution `json:"temporal_distribution"`
}

// Comparison trend directions.
const (
	TrendIncrease = "increase"
	TrendDecrease = "decrease"
	TrendEqual    = "equal"
)

// ComparisonResult captures period-over-period deltas between two statements.
type ComparisonResult struct {
	AmountDelta        decimal.Decimal `json:"amount_delta"`
	AmountPercent      decimal.Decimal `json:"amount_percent"`
	AmountTrend        string          `json:"amount_trend"`
	TransactionDelta   int             `json:"transaction_delta"`
	TransactionPercent decimal.Decimal `json:"transaction_percent"`
	TransactionTrend   string          `json:"transaction_trend"`
}

// StatementSummary folds a statement collection into portfolio-level
// counters. All-zero on empty input.
type StatementSummary struct {
	TotalStatements int             `json:"total_statements"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AverageAmount   decimal.Decimal `json:"average_amount"`
	DueSoonCount    int             `json:"due_soon_count"`
	OverdueCount    int             `json:"overdue_count"`
	CurrentCount    int             `json:"current_count"`
}

// SkippedTransaction is a warning-level diagnostic for a transaction excluded
// from aggregation. Skips never abort the run.
type SkippedTransaction struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	CardID        uuid.UUID `json:"card_id"`
	Reason        string    `json:"reason"`
}
