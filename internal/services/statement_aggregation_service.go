package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

type statementAggregationService struct {
	billingCycle      BillingCycleServiceInterface
	metrics           MetricsRecorderInterface
	defaultClosingDay int
	defaultDueDay     int
}

// NewStatementAggregationService creates a new
// StatementAggregationServiceInterface instance. The default closing and due
// day apply to cards that carry no cycle configuration of their own.
func NewStatementAggregationService(
	billingCycle BillingCycleServiceInterface,
	metrics MetricsRecorderInterface,
	defaultClosingDay, defaultDueDay int,
) StatementAggregationServiceInterface {
	return &statementAggregationService{
		billingCycle:      billingCycle,
		metrics:           metrics,
		defaultClosingDay: defaultClosingDay,
		defaultDueDay:     defaultDueDay,
	}
}

// Aggregate groups transactions into per-(card, due date) statements and
// classifies each against the shared reference time. The output is a fresh
// collection sorted by due date descending; inputs are never mutated.
func (s *statementAggregationService) Aggregate(
	transactions []models.Transaction,
	cards []models.Card,
	now time.Time,
) ([]models.Statement, []models.SkippedTransaction, error) {
	start := time.Now()

	cardIndex := make(map[uuid.UUID]*models.Card, len(cards))
	for i := range cards {
		cardIndex[cards[i].ID] = &cards[i]
	}

	buckets := make(map[string]*models.Statement)
	skipped := make([]models.SkippedTransaction, 0)

	for i := range transactions {
		txn := &transactions[i]

		card, ok := cardIndex[txn.CardID]
		if !ok {
			skipped = append(skipped, models.SkippedTransaction{
				TransactionID: txn.ID,
				CardID:        txn.CardID,
				Reason:        "unknown card",
			})
			slog.Warn("skipping transaction with unknown card",
				"transaction_id", txn.ID,
				"card_id", txn.CardID)
			s.metrics.IncrementCounter("statement.transaction.skipped",
				map[string]string{"reason": "unknown_card"})
			continue
		}

		closingDay, dueDay := card.CycleConfig(s.defaultClosingDay, s.defaultDueDay)

		dueDate, err := s.billingCycle.ResolveDueDate(txn.Date, closingDay, dueDay)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve billing cycle for card %s: %w", card.ID, err)
		}

		key := bucketKey(card.ID, dueDate)
		statement, ok := buckets[key]
		if !ok {
			statement = newStatement(card, dueDate)
			buckets[key] = statement
		}

		statement.Transactions = append(statement.Transactions, *txn)
		statement.PurchaseCount++
		statement.TotalAmount = statement.TotalAmount.Add(txn.Amount)
		statement.TotalInstallments += txn.Installments()
	}

	statements := make([]models.Statement, 0, len(buckets))
	for _, statement := range buckets {
		statement.Status = s.billingCycle.Classify(statement.DueDate, now)
		statements = append(statements, *statement)
	}

	sortStatements(statements)

	duration := time.Since(start)
	s.metrics.IncrementCounter("statement.aggregation.completed", nil)
	s.metrics.RecordProcessingTime("statement.aggregation", duration)
	s.metrics.RecordGauge("statement.aggregation.size", float64(len(statements)), nil)

	slog.Info("statements aggregated",
		"transaction_count", len(transactions),
		"statement_count", len(statements),
		"skipped_count", len(skipped),
		"duration_ms", duration.Milliseconds())

	return statements, skipped, nil
}

func bucketKey(cardID uuid.UUID, dueDate time.Time) string {
	return cardID.String() + "|" + dueDate.Format("2006-01-02")
}

func newStatement(card *models.Card, dueDate time.Time) *models.Statement {
	return &models.Statement{
		CardID:       card.ID,
		CardName:     card.Name,
		CardBrand:    card.Brand,
		CardColor:    card.Color,
		DueDate:      dueDate,
		Transactions: make([]models.Transaction, 0),
	}
}

// sortStatements orders by due date descending, breaking ties by card ID so
// repeated runs over identical input produce identical output.
func sortStatements(statements []models.Statement) {
	sort.Slice(statements, func(i, j int) bool {
		if !statements[i].DueDate.Equal(statements[j].DueDate) {
			return statements[i].DueDate.After(statements[j].DueDate)
		}
		return statements[i].CardID.String() < statements[j].CardID.String()
	})
}
