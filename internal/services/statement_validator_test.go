package services

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatementValidatorTestSuite defines the test suite for StatementValidatorInterface
type StatementValidatorTestSuite struct {
	suite.Suite
	metrics   *StubMetricsRecorder
	validator StatementValidatorInterface
}

// SetupTest runs before each test
func (s *StatementValidatorTestSuite) SetupTest() {
	s.metrics = NewStubMetricsRecorder()
	s.validator = NewStatementValidator(s.metrics)
}

// TestStatementValidatorSuite runs the test suite
func TestStatementValidatorSuite(t *testing.T) {
	suite.Run(t, new(StatementValidatorTestSuite))
}

func (s *StatementValidatorTestSuite) validDraft() *models.StatementDraft {
	return &models.StatementDraft{
		CardID:      uuid.New().String(),
		DueDate:     "2025-02-10",
		TotalAmount: decimal.RequireFromString("150.00"),
		Transactions: []models.Transaction{
			{
				CardID: uuid.New(),
				Date:   time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
				Amount: decimal.RequireFromString("150.00"),
			},
		},
	}
}

func (s *StatementValidatorTestSuite) TestValidateDraft_ValidDraftPasses() {
	result := s.validator.ValidateDraft(s.validDraft())

	s.True(result.Valid)
	s.Empty(result.Errors)
	s.Equal(1, s.metrics.Counters["statement.draft.validated"])
}

func (s *StatementValidatorTestSuite) TestValidateDraft_NilDraft() {
	result := s.validator.ValidateDraft(nil)

	s.False(result.Valid)
	s.Equal([]string{"statement draft is required"}, result.Errors)
}

func (s *StatementValidatorTestSuite) TestValidateDraft_MissingCard() {
	draft := s.validDraft()
	draft.CardID = ""

	result := s.validator.ValidateDraft(draft)

	s.False(result.Valid)
	s.Contains(result.Errors, "card is required")
}

func (s *StatementValidatorTestSuite) TestValidateDraft_MissingDueDate() {
	draft := s.validDraft()
	draft.DueDate = ""

	result := s.validator.ValidateDraft(draft)

	s.False(result.Valid)
	s.Contains(result.Errors, "due date is required")
}

func (s *StatementValidatorTestSuite) TestValidateDraft_UnparsableDueDate() {
	draft := s.validDraft()
	draft.DueDate = "10/02/2025"

	result := s.validator.ValidateDraft(draft)

	s.False(result.Valid)
	s.Contains(result.Errors, "due date must be a valid date in YYYY-MM-DD format")
}

func (s *StatementValidatorTestSuite) TestValidateDraft_NonPositiveTotal() {
	draft := s.validDraft()
	draft.TotalAmount = decimal.Zero

	result := s.validator.ValidateDraft(draft)

	s.False(result.Valid)
	s.Contains(result.Errors, "total amount must be greater than zero")
}

func (s *StatementValidatorTestSuite) TestValidateDraft_NoTransactions() {
	draft := s.validDraft()
	draft.Transactions = nil

	result := s.validator.ValidateDraft(draft)

	s.False(result.Valid)
	s.Contains(result.Errors, "statement must contain at least one transaction")
}

func (s *StatementValidatorTestSuite) TestValidateDraft_CollectsEveryViolation() {
	result := s.validator.ValidateDraft(&models.StatementDraft{})

	s.False(result.Valid)
	s.Len(result.Errors, 4)
}
