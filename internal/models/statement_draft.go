package models

import (
	"github.com/shopspring/decimal"
)

// StatementDraft is the pre-acceptance shape of a manually created statement.
// Drafts are validated before a caller persists or displays them; the
// automatic aggregation path never produces drafts.
type StatementDraft struct {
	CardID       string          `json:"card_id" validate:"required"`
	DueDate      string          `json:"due_date" validate:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Transactions []Transaction   `json:"transactions"`
}

// DraftValidationResult collects the outcome of draft validation. The caller
// decides whether a failed result blocks acceptance.
type DraftValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
