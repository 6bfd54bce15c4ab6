package main

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// promptView is the data available to the locale's prompt template. Amounts
// are preformatted so the template never does arithmetic.
type promptView struct {
	Language    string
	PeriodLabel string

	TotalIncome    string
	TotalExpense   string
	Profit         string
	ProfitMargin   string
	AvgDailyIncome string
	ProfitableDays int
	TotalDays      int

	OnlineIncome      string
	OnlinePercentage  string
	OfflineIncome     string
	OfflinePercentage string

	TopExpenses []expenseLine
	RecentTrend []trendLine

	// RoundedProfit feeds the worked example in the instructions
	RoundedProfit string
}

type expenseLine struct {
	Rank       int
	Name       string
	Amount     string
	Percentage string
}

type trendLine struct {
	Date    string
	Profit  string
	Income  string
	Expense string
}

// amount formats a currency amount with at most two decimals and no
// trailing zeros.
func amount(d decimal.Decimal) string {
	return d.Round(2).String()
}

func wholeAmount(d decimal.Decimal) string {
	return d.StringFixed(0)
}

func newPromptView(locale *Locale, period Period, summary FinancialSummary, breakdown Breakdown) promptView {
	view := promptView{
		Language:          locale.Language,
		PeriodLabel:       locale.period(period).Label,
		TotalIncome:       amount(summary.TotalIncome),
		TotalExpense:      amount(summary.TotalExpense),
		Profit:            amount(summary.Profit),
		ProfitMargin:      summary.ProfitMargin.StringFixed(1),
		AvgDailyIncome:    wholeAmount(summary.AvgDailyIncome),
		ProfitableDays:    summary.ProfitableDays,
		TotalDays:         summary.TotalDays,
		OnlineIncome:      amount(breakdown.Income.Online),
		OnlinePercentage:  breakdown.Income.OnlinePercentage.StringFixed(1),
		OfflineIncome:     amount(breakdown.Income.Offline),
		OfflinePercentage: breakdown.Income.OfflinePercentage.StringFixed(1),
		RoundedProfit:     wholeAmount(summary.Profit),
	}

	for i, expense := range breakdown.TopExpenses {
		view.TopExpenses = append(view.TopExpenses, expenseLine{
			Rank:       i + 1,
			Name:       expense.Name,
			Amount:     amount(expense.TotalAmount),
			Percentage: expense.Percentage.StringFixed(1),
		})
	}

	for _, day := range breakdown.RecentTrend {
		view.RecentTrend = append(view.RecentTrend, trendLine{
			Date:    day.Date.Format(dateLayout),
			Profit:  wholeAmount(day.Profit),
			Income:  wholeAmount(day.TotalIncome),
			Expense: wholeAmount(day.TotalExpense),
		})
	}

	return view
}

// renderPrompt builds the text sent to the generation service
func renderPrompt(locale *Locale, period Period, summary FinancialSummary, breakdown Breakdown) (string, error) {
	prompt, err := locale.render(promptTemplate, newPromptView(locale, period, summary, breakdown))
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return prompt, nil
}
