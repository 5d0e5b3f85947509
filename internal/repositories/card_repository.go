package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound = errors.New("card not found")
)

// cardRepository implements CardRepositoryInterface
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) CardRepositoryInterface {
	return &cardRepository{
		db: db,
	}
}

// Create creates a new card
func (r *cardRepository) Create(card *models.Card) error {
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

// GetByID retrieves a card by ID
func (r *cardRepository) GetByID(id uuid.UUID) (*models.Card, error) {
	card := &models.Card{ID: id}
	if err := r.db.First(card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w: %w", ErrDatabase, err)
	}
	return card, nil
}

// GetAll retrieves the full card catalog
func (r *cardRepository) GetAll() ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Order("name ASC").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get cards: %w: %w", ErrDatabase, err)
	}
	return cards, nil
}

// Update updates a card
func (r *cardRepository) Update(card *models.Card) error {
	result := r.db.Model(&models.Card{ID: card.ID}).Updates(card)
	if result.Error != nil {
		return fmt.Errorf("failed to update card: %w: %w", ErrDatabase, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes a card
func (r *cardRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Card{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w: %w", ErrDatabase, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
