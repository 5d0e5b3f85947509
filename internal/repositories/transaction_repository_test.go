package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositoryTestSuite defines the test suite for TransactionRepositoryInterface
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
	card *models.Card
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.card = database.CreateTestCard(s.T(), s.db, "Main Card", 5, 10)
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) TestCreateAndGetByID() {
	transaction := &models.Transaction{
		CardID:      s.card.ID,
		Date:        time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("99.90"),
		Description: "groceries",
	}

	err := s.repo.Create(transaction)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, transaction.ID)
	s.Equal(1, transaction.InstallmentCount)

	found, err := s.repo.GetByID(transaction.ID)
	s.Require().NoError(err)
	s.Equal(s.card.ID, found.CardID)
	s.True(found.Amount.Equal(decimal.RequireFromString("99.90")))
}

func (s *TransactionRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch() {
	transactions := []models.Transaction{
		{
			CardID: s.card.ID,
			Date:   time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
			Amount: decimal.RequireFromString("10.00"),
		},
		{
			CardID: s.card.ID,
			Date:   time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC),
			Amount: decimal.RequireFromString("20.00"),
		},
	}

	err := s.repo.CreateBatch(transactions)
	s.Require().NoError(err)

	all, err := s.repo.GetAll()
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_EmptyIsNoop() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *TransactionRepositoryTestSuite) TestGetByCardID_OrderedByDateDescending() {
	other := database.CreateTestCard(s.T(), s.db, "Other Card", 15, 22)

	database.CreateTestTransaction(s.T(), s.db, s.card,
		time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), "10.00")
	database.CreateTestTransaction(s.T(), s.db, s.card,
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), "20.00")
	database.CreateTestTransaction(s.T(), s.db, other,
		time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), "30.00")

	transactions, err := s.repo.GetByCardID(s.card.ID)

	s.Require().NoError(err)
	s.Require().Len(transactions, 2)
	s.Equal(20, transactions[0].Date.Day())
	s.Equal(3, transactions[1].Date.Day())
}

func (s *TransactionRepositoryTestSuite) TestGetByDateRange() {
	database.CreateTestTransaction(s.T(), s.db, s.card,
		time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), "10.00")
	database.CreateTestTransaction(s.T(), s.db, s.card,
		time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC), "20.00")

	transactions, err := s.repo.GetByDateRange(
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
	)

	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(time.January, transactions[0].Date.Month())
}
