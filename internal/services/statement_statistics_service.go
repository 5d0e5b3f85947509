package services

import (
	"sort"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// weeksPerMonth caps the week-of-month buckets; days past the 28th fold into
// the last bucket.
const weeksPerMonth = 4

type statementStatisticsService struct{}

// NewStatementStatisticsService creates a new
// StatementStatisticsServiceInterface instance
func NewStatementStatisticsService() StatementStatisticsServiceInterface {
	return &statementStatisticsService{}
}

// ComputeStatistics derives the descriptive statistics of a single statement.
// Returns nil when the statement aggregates no purchases.
func (s *statementStatisticsService) ComputeStatistics(statement *models.Statement) *models.StatementStatistics {
	if statement == nil || statement.IsEmpty() {
		return nil
	}

	averageAmount := decimal.Zero
	if statement.PurchaseCount > 0 {
		averageAmount = statement.TotalAmount.Div(decimal.NewFromInt(int64(statement.PurchaseCount)))
	}

	categories := s.categoryBreakdown(statement.Transactions)

	var topCategory *models.CategoryBreakdown
	if len(categories) > 0 {
		top := categories[0]
		topCategory = &top
	}

	return &models.StatementStatistics{
		TotalTransactions:    statement.PurchaseCount,
		TotalAmount:          statement.TotalAmount,
		AverageAmount:        averageAmount,
		TopCategory:          topCategory,
		Categories:           categories,
		DailyBreakdown:       s.dailyBreakdown(statement.Transactions),
		TemporalDistribution: s.temporalDistribution(statement.Transactions),
	}
}

// categoryBreakdown groups purchases by category label and sorts the result
// by summed amount descending.
func (s *statementStatisticsService) categoryBreakdown(transactions []models.Transaction) []models.CategoryBreakdown {
	grouped := make(map[string]*models.CategoryBreakdown)

	for i := range transactions {
		txn := &transactions[i]
		name := txn.Category()

		entry, ok := grouped[name]
		if !ok {
			entry = &models.CategoryBreakdown{Name: name, Amount: decimal.Zero}
			grouped[name] = entry
		}
		entry.Amount = entry.Amount.Add(txn.Amount)
		entry.Count++
	}

	categories := make([]models.CategoryBreakdown, 0, len(grouped))
	for _, entry := range grouped {
		categories = append(categories, *entry)
	}

	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Amount.GreaterThan(categories[j].Amount)
		}
		return categories[i].Name < categories[j].Name
	})

	return categories
}

// dailyBreakdown groups purchases by calendar day of month, most recent day first.
func (s *statementStatisticsService) dailyBreakdown(transactions []models.Transaction) []models.DailyBreakdown {
	grouped := make(map[int]*models.DailyBreakdown)

	for i := range transactions {
		txn := &transactions[i]
		day := txn.Date.Day()

		entry, ok := grouped[day]
		if !ok {
			entry = &models.DailyBreakdown{Day: day, Amount: decimal.Zero}
			grouped[day] = entry
		}
		entry.Amount = entry.Amount.Add(txn.Amount)
		entry.Count++
	}

	days := make([]models.DailyBreakdown, 0, len(grouped))
	for _, entry := range grouped {
		days = append(days, *entry)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Day > days[j].Day
	})

	return days
}

// temporalDistribution buckets purchase amounts by week of month and by
// weekday. Both maps are additive amounts, initialized so every bucket is
// present even when zero.
func (s *statementStatisticsService) temporalDistribution(transactions []models.Transaction) models.TemporalDistribution {
	byWeek := make(map[int]decimal.Decimal, weeksPerMonth)
	for week := 1; week <= weeksPerMonth; week++ {
		byWeek[week] = decimal.Zero
	}

	byWeekday := make(map[int]decimal.Decimal, 7)
	for weekday := 0; weekday < 7; weekday++ {
		byWeekday[weekday] = decimal.Zero
	}

	for i := range transactions {
		txn := &transactions[i]

		week := (txn.Date.Day() + 6) / 7
		if week > weeksPerMonth {
			week = weeksPerMonth
		}
		byWeek[week] = byWeek[week].Add(txn.Amount)

		weekday := int(txn.Date.Weekday())
		byWeekday[weekday] = byWeekday[weekday].Add(txn.Amount)
	}

	return models.TemporalDistribution{
		ByWeekOfMonth: byWeek,
		ByDayOfWeek:   byWeekday,
	}
}
