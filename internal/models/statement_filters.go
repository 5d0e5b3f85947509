package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementFilters holds the predicate set for filtering a statement
// collection. Nil or empty fields match everything; supplied fields are
// combined with AND.
type StatementFilters struct {
	CardID     *uuid.UUID       `json:"card_id,omitempty"`
	PeriodKey  string           `json:"period_key,omitempty"`
	StatusKind string           `json:"status_kind,omitempty"`
	MinAmount  *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount  *decimal.Decimal `json:"max_amount,omitempty"`
}

// IsZero returns true if no predicate field is set.
func (f *StatementFilters) IsZero() bool {
	return f.CardID == nil && f.PeriodKey == "" && f.StatusKind == "" &&
		f.MinAmount == nil && f.MaxAmount == nil
}
