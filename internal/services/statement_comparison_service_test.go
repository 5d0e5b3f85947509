package services

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatementComparisonServiceTestSuite defines the test suite for StatementComparisonServiceInterface
type StatementComparisonServiceTestSuite struct {
	suite.Suite
	service StatementComparisonServiceInterface
}

// SetupTest runs before each test
func (s *StatementComparisonServiceTestSuite) SetupTest() {
	s.service = NewStatementComparisonService()
}

// TestStatementComparisonServiceSuite runs the test suite
func TestStatementComparisonServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementComparisonServiceTestSuite))
}

func (s *StatementComparisonServiceTestSuite) newStatement(totalAmount string, purchaseCount int) *models.Statement {
	return &models.Statement{
		DueDate:       time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.RequireFromString(totalAmount),
		PurchaseCount: purchaseCount,
	}
}

func (s *StatementComparisonServiceTestSuite) TestCompare_IdenticalStatementsAreEqualTrend() {
	statement := s.newStatement("100.00", 4)

	result := s.service.Compare(statement, statement)

	s.True(result.AmountDelta.Equal(decimal.Zero))
	s.True(result.AmountPercent.Equal(decimal.Zero))
	s.Equal(models.TrendEqual, result.AmountTrend)
	s.Equal(0, result.TransactionDelta)
	s.True(result.TransactionPercent.Equal(decimal.Zero))
	s.Equal(models.TrendEqual, result.TransactionTrend)
}

func (s *StatementComparisonServiceTestSuite) TestCompare_Increase() {
	earlier := s.newStatement("100.00", 4)
	later := s.newStatement("150.00", 6)

	result := s.service.Compare(earlier, later)

	s.True(result.AmountDelta.Equal(decimal.RequireFromString("50.00")))
	s.True(result.AmountPercent.Equal(decimal.RequireFromString("50")))
	s.Equal(models.TrendIncrease, result.AmountTrend)
	s.Equal(2, result.TransactionDelta)
	s.True(result.TransactionPercent.Equal(decimal.RequireFromString("50")))
	s.Equal(models.TrendIncrease, result.TransactionTrend)
}

func (s *StatementComparisonServiceTestSuite) TestCompare_Decrease() {
	earlier := s.newStatement("200.00", 10)
	later := s.newStatement("150.00", 5)

	result := s.service.Compare(earlier, later)

	s.True(result.AmountDelta.Equal(decimal.RequireFromString("-50.00")))
	s.True(result.AmountPercent.Equal(decimal.RequireFromString("-25")))
	s.Equal(models.TrendDecrease, result.AmountTrend)
	s.Equal(-5, result.TransactionDelta)
	s.True(result.TransactionPercent.Equal(decimal.RequireFromString("-50")))
	s.Equal(models.TrendDecrease, result.TransactionTrend)
}

func (s *StatementComparisonServiceTestSuite) TestCompare_ZeroBaseYieldsZeroPercent() {
	earlier := s.newStatement("0.00", 0)
	later := s.newStatement("75.00", 3)

	result := s.service.Compare(earlier, later)

	s.True(result.AmountDelta.Equal(decimal.RequireFromString("75.00")))
	s.True(result.AmountPercent.Equal(decimal.Zero))
	s.Equal(models.TrendIncrease, result.AmountTrend)
	s.Equal(3, result.TransactionDelta)
	s.True(result.TransactionPercent.Equal(decimal.Zero))
	s.Equal(models.TrendIncrease, result.TransactionTrend)
}
