package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackInsights(t *testing.T) {
	profitable := FinancialSummary{
		TotalIncome:    dec("10000"),
		TotalExpense:   dec("6000"),
		Profit:         dec("4000"),
		ProfitMargin:   dec("40"),
		ProfitableDays: 5,
		TotalDays:      7,
	}
	breakdown := Breakdown{
		TopExpenses: []CategorySummary{
			{Name: "Rent", TotalAmount: dec("4000"), Percentage: dec("66.7")},
			{Name: "Food", TotalAmount: dec("2000"), Percentage: dec("33.3")},
		},
		Income: IncomeBreakdown{Online: dec("3000"), Offline: dec("7000")},
	}

	t.Run("builds summary, profit, top expense and income insights", func(t *testing.T) {
		insights := fallbackInsights(catalog, PeriodWeek, profitable, breakdown)

		require.Len(t, insights, 4)
		assert.Equal(t, InsightRecord{
			Type:    InsightSummary,
			Title:   "This week's summary",
			Message: "Total income ₹10000, expenses ₹6000, profit ₹4000. 5 days were profitable.",
			Icon:    "📊",
		}, insights[0])
		assert.Equal(t, InsightProfit, insights[1].Type)
		assert.Contains(t, insights[1].Message, "40.0% margin")
		assert.Equal(t, "Rent cost ₹4000 (66.7%) this period. Try to bring it down.", insights[2].Message)
		assert.Equal(t, "Online: ₹3000, offline: ₹7000. Offline income is leading!", insights[3].Message)
	})

	t.Run("warns about a loss", func(t *testing.T) {
		loss := FinancialSummary{
			TotalIncome:  dec("1000"),
			TotalExpense: dec("2500"),
			Profit:       dec("-1500"),
		}

		insights := fallbackInsights(catalog, PeriodMonth, loss, Breakdown{})

		require.Len(t, insights, 3)
		assert.Equal(t, "This month's summary", insights[0].Title)
		assert.Equal(t, InsightWarning, insights[1].Type)
		assert.Contains(t, insights[1].Message, "₹1500 loss")
		assert.Equal(t, InsightIncome, insights[2].Type)
	})

	t.Run("zero profit counts as a loss", func(t *testing.T) {
		insights := fallbackInsights(catalog, PeriodToday, FinancialSummary{}, Breakdown{})

		require.Len(t, insights, 2)
		assert.Equal(t, InsightWarning, insights[1].Type)
	})

	t.Run("online leads only when strictly greater", func(t *testing.T) {
		tied := Breakdown{Income: IncomeBreakdown{Online: dec("500"), Offline: dec("500")}}

		insights := fallbackInsights(catalog, PeriodWeek, FinancialSummary{TotalIncome: dec("1000"), Profit: dec("1000")}, tied)

		assert.Contains(t, insights[len(insights)-1].Message, catalog.IncomeLeaders.Offline)
	})

	t.Run("is deterministic and always valid", func(t *testing.T) {
		first := fallbackInsights(catalog, PeriodWeek, profitable, breakdown)
		second := fallbackInsights(catalog, PeriodWeek, profitable, breakdown)

		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, len(first), 1)
		assert.LessOrEqual(t, len(first), 4)
		for _, insight := range first {
			assert.NoError(t, validateInsight(insight))
		}
	})

	t.Run("renders the Malayalam catalog", func(t *testing.T) {
		ml, err := loadLocale("ml", "")
		require.NoError(t, err)

		insights := fallbackInsights(ml, PeriodWeek, profitable, breakdown)

		require.Len(t, insights, 4)
		assert.Contains(t, insights[0].Title, "ഈ ആഴ്ചയിലെ")
		assert.Contains(t, insights[0].Message, "₹10000")
	})

	t.Run("unknown periods use today's title", func(t *testing.T) {
		insights := fallbackInsights(catalog, Period("year"), FinancialSummary{Profit: decimal.NewFromInt(1)}, Breakdown{})

		assert.Equal(t, "Today's summary", insights[0].Title)
	})
}
