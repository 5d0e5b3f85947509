package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryUncategorized is the display label applied when a purchase carries
// no category.
const CategoryUncategorized = "Uncategorized"

var (
	ErrInvalidAmount      = errors.New("transaction amount must not be negative")
	ErrInvalidInstallment = errors.New("installment count must be at least 1")
)

// Transaction represents a single credit-card purchase. The statement engine
// treats transactions as immutable input and never mutates them.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CardID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"card_id"`
	Date             time.Time       `gorm:"not null;index" json:"date"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	InstallmentCount int             `gorm:"default:1" json:"installment_count"`
	CategoryID       *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	CategoryName     string          `gorm:"type:varchar(100)" json:"category_name,omitempty"`
	CategoryColor    string          `gorm:"type:varchar(20)" json:"category_color,omitempty"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.InstallmentCount == 0 {
		t.InstallmentCount = 1
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.CardID == uuid.Nil {
		return errors.New("card ID is required")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if t.InstallmentCount < 0 {
		return ErrInvalidInstallment
	}
	return nil
}

// Installments returns the installment count, treating an unset count as a
// single-installment purchase.
func (t *Transaction) Installments() int {
	if t.InstallmentCount < 1 {
		return 1
	}
	return t.InstallmentCount
}

// Category returns the display label of the purchase category.
func (t *Transaction) Category() string {
	if t.CategoryName == "" {
		return CategoryUncategorized
	}
	return t.CategoryName
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "card_transactions"
}
