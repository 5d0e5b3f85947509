package repositories

import (
	"errors"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// ErrDatabase marks infrastructure-level persistence failures, as opposed to
// domain outcomes like a missing record. Handlers use it to map failures to
// the database error code without inspecting driver internals.
var ErrDatabase = errors.New("database failure")

// CardRepositoryInterface defines the persistence contract for the card
// catalog. The statement engine consumes the loaded collections read-only.
type CardRepositoryInterface interface {
	Create(card *models.Card) error
	GetByID(id uuid.UUID) (*models.Card, error)
	GetAll() ([]models.Card, error)
	Update(card *models.Card) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the persistence contract for
// purchase transactions.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByCardID(cardID uuid.UUID) ([]models.Transaction, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)
	GetAll() ([]models.Transaction, error)
}
