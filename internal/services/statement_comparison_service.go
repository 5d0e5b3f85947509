package services

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var percentBase = decimal.NewFromInt(100)

type statementComparisonService struct{}

// NewStatementComparisonService creates a new
// StatementComparisonServiceInterface instance
func NewStatementComparisonService() StatementComparisonServiceInterface {
	return &statementComparisonService{}
}

// Compare computes deltas, percentages, and trends from the earlier statement
// to the later one. Total over any pair of statements; percentage bases of
// zero yield a zero percentage rather than an error.
func (s *statementComparisonService) Compare(earlier, later *models.Statement) models.ComparisonResult {
	amountDelta := later.TotalAmount.Sub(earlier.TotalAmount)

	amountPercent := decimal.Zero
	if earlier.TotalAmount.GreaterThan(decimal.Zero) {
		amountPercent = amountDelta.Div(earlier.TotalAmount).Mul(percentBase)
	}

	transactionDelta := later.PurchaseCount - earlier.PurchaseCount

	transactionPercent := decimal.Zero
	if earlier.PurchaseCount > 0 {
		transactionPercent = decimal.NewFromInt(int64(transactionDelta)).
			Div(decimal.NewFromInt(int64(earlier.PurchaseCount))).
			Mul(percentBase)
	}

	return models.ComparisonResult{
		AmountDelta:        amountDelta,
		AmountPercent:      amountPercent,
		AmountTrend:        trendForDecimal(amountDelta),
		TransactionDelta:   transactionDelta,
		TransactionPercent: transactionPercent,
		TransactionTrend:   trendForInt(transactionDelta),
	}
}

func trendForDecimal(delta decimal.Decimal) string {
	switch {
	case delta.GreaterThan(decimal.Zero):
		return models.TrendIncrease
	case delta.LessThan(decimal.Zero):
		return models.TrendDecrease
	default:
		return models.TrendEqual
	}
}

func trendForInt(delta int) string {
	switch {
	case delta > 0:
		return models.TrendIncrease
	case delta < 0:
		return models.TrendDecrease
	default:
		return models.TrendEqual
	}
}
