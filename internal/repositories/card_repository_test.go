package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CardRepositoryTestSuite defines the test suite for CardRepositoryInterface
type CardRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo CardRepositoryInterface
}

// SetupTest runs before each test
func (s *CardRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCardRepository(s.db.DB)
}

// TearDownTest runs after each test
func (s *CardRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCardRepositorySuite runs the test suite
func TestCardRepositorySuite(t *testing.T) {
	suite.Run(t, new(CardRepositoryTestSuite))
}

func (s *CardRepositoryTestSuite) TestCreateAndGetByID() {
	card := &models.Card{
		Name:       "Main Card",
		Brand:      "visa",
		ClosingDay: 5,
		DueDay:     10,
	}

	err := s.repo.Create(card)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, card.ID)

	found, err := s.repo.GetByID(card.ID)
	s.Require().NoError(err)
	s.Equal(card.Name, found.Name)
	s.Equal(5, found.ClosingDay)
	s.Equal(10, found.DueDay)
}

func (s *CardRepositoryTestSuite) TestCreate_InvalidCycleConfigRejected() {
	card := &models.Card{
		Name:       "Broken Card",
		ClosingDay: 45,
		DueDay:     10,
	}

	err := s.repo.Create(card)

	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidClosingDay)
}

func (s *CardRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrCardNotFound)
}

func (s *CardRepositoryTestSuite) TestGetAll_OrderedByName() {
	database.CreateTestCard(s.T(), s.db, "Zeta Card", 5, 10)
	database.CreateTestCard(s.T(), s.db, "Alpha Card", 15, 22)

	cards, err := s.repo.GetAll()

	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.Equal("Alpha Card", cards[0].Name)
	s.Equal("Zeta Card", cards[1].Name)
}

func (s *CardRepositoryTestSuite) TestGetAll_DatabaseFailureIsMarked() {
	s.Require().NoError(s.db.Exec("DROP TABLE cards").Error)

	_, err := s.repo.GetAll()

	s.Error(err)
	s.ErrorIs(err, ErrDatabase)
}

func (s *CardRepositoryTestSuite) TestUpdate() {
	card := database.CreateTestCard(s.T(), s.db, "Main Card", 5, 10)

	card.ClosingDay = 12
	card.DueDay = 20
	err := s.repo.Update(card)
	s.Require().NoError(err)

	updated, err := s.repo.GetByID(card.ID)
	s.Require().NoError(err)
	s.Equal(12, updated.ClosingDay)
	s.Equal(20, updated.DueDay)
}

func (s *CardRepositoryTestSuite) TestUpdate_NotFound() {
	card := &models.Card{ID: uuid.New(), Name: "Ghost Card"}

	err := s.repo.Update(card)

	s.ErrorIs(err, ErrCardNotFound)
}

func (s *CardRepositoryTestSuite) TestDelete() {
	card := database.CreateTestCard(s.T(), s.db, "Main Card", 5, 10)

	err := s.repo.Delete(card.ID)
	s.Require().NoError(err)

	_, err = s.repo.GetByID(card.ID)
	s.ErrorIs(err, ErrCardNotFound)
}

func (s *CardRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New())

	s.ErrorIs(err, ErrCardNotFound)
}
