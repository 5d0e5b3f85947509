package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatement_PeriodKey(t *testing.T) {
	statement := Statement{
		DueDate: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2025-02", statement.PeriodKey())
}

func TestStatement_IsEmpty(t *testing.T) {
	assert.True(t, (&Statement{}).IsEmpty())
	assert.True(t, (&Statement{Transactions: []Transaction{}}).IsEmpty())
	assert.False(t, (&Statement{Transactions: []Transaction{{}}}).IsEmpty())
}
