package services

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"
)

// Status classification thresholds in days to due date, evaluated in order.
const (
	dueSoonThresholdDays      = 3
	upcomingWeekThresholdDays = 7
)

var (
	ErrInvalidCycleConfig = errors.New("invalid billing cycle configuration")
)

type billingCycleService struct{}

// NewBillingCycleService creates a new BillingCycleServiceInterface instance
func NewBillingCycleService() BillingCycleServiceInterface {
	return &billingCycleService{}
}

// ResolveDueDate resolves the due date of the billing cycle a purchase
// belongs to. A purchase after the closing day rolls into the next month's
// cycle; a purchase exactly on the closing day stays in the current cycle.
func (s *billingCycleService) ResolveDueDate(transactionDate time.Time, closingDay, dueDay int) (time.Time, error) {
	if closingDay < 1 || closingDay > 31 {
		return time.Time{}, fmt.Errorf("%w: closing day %d is outside 1..31", ErrInvalidCycleConfig, closingDay)
	}
	if dueDay < 1 || dueDay > 31 {
		return time.Time{}, fmt.Errorf("%w: due day %d is outside 1..31", ErrInvalidCycleConfig, dueDay)
	}

	year := transactionDate.Year()
	month := transactionDate.Month()

	if transactionDate.Day() > closingDay {
		if month == time.December {
			month = time.January
			year++
		} else {
			month++
		}
	}

	return time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC), nil
}

// Classify maps a due date and reference time to a lifecycle status. The
// thresholds and their evaluation order are contractual: consumers sort and
// highlight on the resulting priorities.
func (s *billingCycleService) Classify(dueDate, now time.Time) models.StatementStatus {
	daysToDue := daysBetween(now, dueDate)

	switch {
	case daysToDue < 0:
		return models.StatementStatus{
			Kind:      models.StatusOverdue,
			Priority:  models.PriorityOverdue,
			Label:     "Overdue",
			ColorHint: "red",
		}
	case daysToDue <= dueSoonThresholdDays:
		return models.StatementStatus{
			Kind:      models.StatusDueSoon,
			Priority:  models.PriorityDueSoon,
			Label:     "Due soon",
			ColorHint: "orange",
		}
	case daysToDue <= upcomingWeekThresholdDays:
		return models.StatementStatus{
			Kind:      models.StatusUpcomingWeek,
			Priority:  models.PriorityUpcomingWeek,
			Label:     "Due this week",
			ColorHint: "yellow",
		}
	default:
		return models.StatementStatus{
			Kind:      models.StatusCurrent,
			Priority:  models.PriorityCurrent,
			Label:     "Current",
			ColorHint: "green",
		}
	}
}

// daysBetween returns whole calendar days from one date to another, negative
// when to precedes from. Both sides are truncated to calendar-date
// granularity so time-of-day never shifts a classification.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
