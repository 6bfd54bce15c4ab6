package main

import (
	"sort"
	"strings"

	"smartinsights/db/generated"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	topExpenseLimit  = 5
	recentTrendLimit = 5

	onlineCategory  = "online"
	offlineCategory = "offline"
)

var hundred = decimal.NewFromInt(100)

// Row conversion functions

// numericToDecimal converts a Postgres numeric. NULL, NaN and infinities are
// treated as zero.
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func categoryName(name pgtype.Text) string {
	if !name.Valid {
		return ""
	}
	return name.String
}

func expenseCategories(rows []generated.GetExpenseSummaryByCategoryRow) []CategorySummary {
	categories := make([]CategorySummary, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, CategorySummary{
			Name:        categoryName(row.CategoryName),
			TotalAmount: numericToDecimal(row.TotalAmount),
			Percentage:  numericToDecimal(row.Percentage),
		})
	}
	return categories
}

func incomeCategories(rows []generated.GetIncomeSummaryByCategoryRow) []CategorySummary {
	categories := make([]CategorySummary, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, CategorySummary{
			Name:        categoryName(row.CategoryName),
			TotalAmount: numericToDecimal(row.TotalAmount),
			Percentage:  numericToDecimal(row.Percentage),
		})
	}
	return categories
}

func dailyTrends(rows []generated.GetDailyTrendRow) []DailyTrend {
	trend := make([]DailyTrend, 0, len(rows))
	for _, row := range rows {
		day := DailyTrend{
			TotalIncome:  numericToDecimal(row.TotalIncome),
			TotalExpense: numericToDecimal(row.TotalExpense),
			Profit:       numericToDecimal(row.Profit),
		}
		if row.Date.Valid {
			day.Date = row.Date.Time
		}
		trend = append(trend, day)
	}
	return trend
}

func savingsRate(row generated.GetSavingsRateRow) SavingsRate {
	return SavingsRate{
		TotalIncome:  numericToDecimal(row.TotalIncome),
		TotalExpense: numericToDecimal(row.TotalExpense),
		Savings:      numericToDecimal(row.Savings),
		Rate:         numericToDecimal(row.SavingsRate),
	}
}

// Aggregation

// summarize reduces the category and trend rows to a FinancialSummary. The
// result does not depend on row order.
func summarize(income, expense []CategorySummary, trend []DailyTrend) FinancialSummary {
	summary := FinancialSummary{
		TotalIncome:  sumAmounts(income),
		TotalExpense: sumAmounts(expense),
		TotalDays:    len(trend),
	}
	summary.Profit = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.ProfitMargin = percentOf(summary.Profit, summary.TotalIncome)

	for _, day := range trend {
		if day.Profit.IsPositive() {
			summary.ProfitableDays++
		}
	}

	if summary.TotalDays > 0 {
		summary.AvgDailyIncome = summary.TotalIncome.DivRound(decimal.NewFromInt(int64(summary.TotalDays)), 2)
	}

	return summary
}

func sumAmounts(rows []CategorySummary) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.TotalAmount)
	}
	return total
}

// percentOf returns part as a percentage of whole with one decimal place, or
// zero when whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(whole, 1)
}

// response rounds the summary for the wire: whole currency units and a
// one-decimal margin.
func (s FinancialSummary) response() SummaryResponse {
	return SummaryResponse{
		TotalIncome:    s.TotalIncome.Round(0).IntPart(),
		TotalExpense:   s.TotalExpense.Round(0).IntPart(),
		Profit:         s.Profit.Round(0).IntPart(),
		ProfitMargin:   s.ProfitMargin.Round(1).InexactFloat64(),
		ProfitableDays: s.ProfitableDays,
		TotalDays:      s.TotalDays,
	}
}

// Breakdown selection

// selectBreakdown picks the top expenses in collaborator order, the
// online/offline income split and the most recent trend days.
func selectBreakdown(income, expense []CategorySummary, trend []DailyTrend, totalIncome decimal.Decimal) Breakdown {
	top := expense
	if len(top) > topExpenseLimit {
		top = top[:topExpenseLimit]
	}

	online := categoryAmount(income, onlineCategory)
	offline := categoryAmount(income, offlineCategory)

	return Breakdown{
		TopExpenses: append([]CategorySummary(nil), top...),
		Income: IncomeBreakdown{
			Online:            online,
			Offline:           offline,
			OnlinePercentage:  percentOf(online, totalIncome),
			OfflinePercentage: percentOf(offline, totalIncome),
		},
		RecentTrend: mostRecent(trend, recentTrendLimit),
	}
}

// categoryAmount finds the income category whose trimmed name equals name,
// ignoring case. Names that merely contain it do not match.
func categoryAmount(rows []CategorySummary, name string) decimal.Decimal {
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Name), name) {
			return row.TotalAmount
		}
	}
	return decimal.Zero
}

func mostRecent(trend []DailyTrend, limit int) []DailyTrend {
	sorted := append([]DailyTrend(nil), trend...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
