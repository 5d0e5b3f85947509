package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidClosingDay = errors.New("closing day must be between 1 and 31")
	ErrInvalidDueDay     = errors.New("due day must be between 1 and 31")
)

// Card represents a credit card in the catalog. ClosingDay and DueDay are the
// card's billing-cycle configuration; zero means the card supplies no
// configuration and the centralized defaults apply.
type Card struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Brand      string    `gorm:"type:varchar(50)" json:"brand"`
	Color      string    `gorm:"type:varchar(20)" json:"color,omitempty"`
	ClosingDay int       `gorm:"default:0" json:"closing_day"`
	DueDay     int       `gorm:"default:0" json:"due_day"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Card
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// BeforeUpdate hook for Card
func (c *Card) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate validates the card fields
func (c *Card) Validate() error {
	if c.Name == "" {
		return errors.New("card name is required")
	}
	if c.ClosingDay != 0 && (c.ClosingDay < 1 || c.ClosingDay > 31) {
		return ErrInvalidClosingDay
	}
	if c.DueDay != 0 && (c.DueDay < 1 || c.DueDay > 31) {
		return ErrInvalidDueDay
	}
	return nil
}

// HasCycleConfig returns true if the card carries its own cycle configuration
func (c *Card) HasCycleConfig() bool {
	return c.ClosingDay != 0 && c.DueDay != 0
}

// CycleConfig returns the card's closing and due day, falling back to the
// supplied defaults for any day the card leaves unset.
func (c *Card) CycleConfig(defaultClosingDay, defaultDueDay int) (closingDay, dueDay int) {
	closingDay = c.ClosingDay
	if closingDay == 0 {
		closingDay = defaultClosingDay
	}
	dueDay = c.DueDay
	if dueDay == 0 {
		dueDay = defaultDueDay
	}
	return closingDay, dueDay
}

// TableName returns the table name for Card
func (c *Card) TableName() string {
	return "cards"
}
