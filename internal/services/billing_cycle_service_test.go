package services

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/stretchr/testify/suite"
)

// BillingCycleServiceTestSuite defines the test suite for BillingCycleServiceInterface
type BillingCycleServiceTestSuite struct {
	suite.Suite
	service BillingCycleServiceInterface
}

// SetupTest runs before each test
func (s *BillingCycleServiceTestSuite) SetupTest() {
	s.service = NewBillingCycleService()
}

// TestBillingCycleServiceSuite runs the test suite
func TestBillingCycleServiceSuite(t *testing.T) {
	suite.Run(t, new(BillingCycleServiceTestSuite))
}

func (s *BillingCycleServiceTestSuite) TestResolveDueDate_OnOrBeforeClosingDay_StaysInCurrentCycle() {
	tests := []struct {
		name            string
		transactionDate time.Time
		expectedDueDate time.Time
	}{
		{
			name:            "well before closing day",
			transactionDate: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
			expectedDueDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:            "exactly on closing day",
			transactionDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
			expectedDueDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			dueDate, err := s.service.ResolveDueDate(tt.transactionDate, 5, 10)

			s.NoError(err)
			s.True(dueDate.Equal(tt.expectedDueDate),
				"expected %s, got %s", tt.expectedDueDate, dueDate)
		})
	}
}

func (s *BillingCycleServiceTestSuite) TestResolveDueDate_AfterClosingDay_RollsToNextMonth() {
	transactionDate := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

	dueDate, err := s.service.ResolveDueDate(transactionDate, 5, 10)

	s.NoError(err)
	s.Equal(time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), dueDate)
}

func (s *BillingCycleServiceTestSuite) TestResolveDueDate_DecemberRollover_AdvancesYear() {
	transactionDate := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)

	dueDate, err := s.service.ResolveDueDate(transactionDate, 5, 10)

	s.NoError(err)
	s.Equal(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), dueDate)
}

func (s *BillingCycleServiceTestSuite) TestResolveDueDate_TimeOfDayDoesNotAffectRollover() {
	lateOnClosingDay := time.Date(2025, time.January, 5, 23, 59, 59, 0, time.UTC)

	dueDate, err := s.service.ResolveDueDate(lateOnClosingDay, 5, 10)

	s.NoError(err)
	s.Equal(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), dueDate)
}

func (s *BillingCycleServiceTestSuite) TestResolveDueDate_InvalidConfiguration() {
	transactionDate := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		closingDay int
		dueDay     int
	}{
		{name: "closing day zero", closingDay: 0, dueDay: 10},
		{name: "closing day too large", closingDay: 32, dueDay: 10},
		{name: "due day zero", closingDay: 5, dueDay: 0},
		{name: "due day too large", closingDay: 5, dueDay: 40},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.ResolveDueDate(transactionDate, tt.closingDay, tt.dueDay)

			s.Error(err)
			s.True(errors.Is(err, ErrInvalidCycleConfig))
		})
	}
}

func (s *BillingCycleServiceTestSuite) TestClassify_ThresholdBoundaries() {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		daysToDue        int
		expectedKind     string
		expectedPriority int
	}{
		{name: "one day past due", daysToDue: -1, expectedKind: models.StatusOverdue, expectedPriority: models.PriorityOverdue},
		{name: "due today", daysToDue: 0, expectedKind: models.StatusDueSoon, expectedPriority: models.PriorityDueSoon},
		{name: "upper edge of due soon", daysToDue: 3, expectedKind: models.StatusDueSoon, expectedPriority: models.PriorityDueSoon},
		{name: "lower edge of upcoming week", daysToDue: 4, expectedKind: models.StatusUpcomingWeek, expectedPriority: models.PriorityUpcomingWeek},
		{name: "upper edge of upcoming week", daysToDue: 7, expectedKind: models.StatusUpcomingWeek, expectedPriority: models.PriorityUpcomingWeek},
		{name: "beyond a week", daysToDue: 8, expectedKind: models.StatusCurrent, expectedPriority: models.PriorityCurrent},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			dueDate := now.AddDate(0, 0, tt.daysToDue)

			status := s.service.Classify(dueDate, now)

			s.Equal(tt.expectedKind, status.Kind)
			s.Equal(tt.expectedPriority, status.Priority)
			s.NotEmpty(status.Label)
			s.NotEmpty(status.ColorHint)
		})
	}
}

func (s *BillingCycleServiceTestSuite) TestClassify_IgnoresTimeOfDay() {
	dueDate := time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)
	lateEvening := time.Date(2025, time.June, 15, 23, 30, 0, 0, time.UTC)

	status := s.service.Classify(dueDate, lateEvening)

	s.Equal(models.StatusDueSoon, status.Kind)
}
