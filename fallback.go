package main

import (
	"github.com/shopspring/decimal"
)

// fallbackView is the data available to the locale's fallback templates
type fallbackView struct {
	PeriodTitle string

	TotalIncome    string
	TotalExpense   string
	Profit         string
	Loss           string
	ProfitMargin   string
	ProfitableDays int

	Category   string
	Amount     string
	Percentage string

	OnlineIncome  string
	OfflineIncome string
	Leader        string
}

// fallbackInsights synthesizes insights from the numbers alone when the
// generation service is unavailable or its output is unusable. It returns
// between one and four records and the first is always the summary.
func fallbackInsights(locale *Locale, period Period, summary FinancialSummary, breakdown Breakdown) []InsightRecord {
	view := fallbackView{
		PeriodTitle:    locale.period(period).Title,
		TotalIncome:    wholeAmount(summary.TotalIncome),
		TotalExpense:   wholeAmount(summary.TotalExpense),
		Profit:         wholeAmount(summary.Profit),
		Loss:           wholeAmount(summary.Profit.Abs()),
		ProfitMargin:   summary.ProfitMargin.StringFixed(1),
		ProfitableDays: summary.ProfitableDays,
		OnlineIncome:   wholeAmount(breakdown.Income.Online),
		OfflineIncome:  wholeAmount(breakdown.Income.Offline),
	}

	insights := []InsightRecord{locale.fallbackInsight(fallbackSummary, view)}

	if summary.Profit.IsPositive() {
		insights = append(insights, locale.fallbackInsight(fallbackProfit, view))
	} else {
		insights = append(insights, locale.fallbackInsight(fallbackLoss, view))
	}

	if len(breakdown.TopExpenses) > 0 {
		top := breakdown.TopExpenses[0]
		view.Category = top.Name
		view.Amount = wholeAmount(top.TotalAmount)
		view.Percentage = top.Percentage.StringFixed(1)
		insights = append(insights, locale.fallbackInsight(fallbackTopExpense, view))
	}

	if summary.TotalIncome.GreaterThan(decimal.Zero) {
		view.Leader = locale.IncomeLeaders.Offline
		if breakdown.Income.Online.GreaterThan(breakdown.Income.Offline) {
			view.Leader = locale.IncomeLeaders.Online
		}
		insights = append(insights, locale.fallbackInsight(fallbackIncome, view))
	}

	return insights
}
