package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insight types accepted from the model and produced locally
const (
	InsightProfit     = "profit"
	InsightExpense    = "expense"
	InsightIncome     = "income"
	InsightTrend      = "trend"
	InsightWarning    = "warning"
	InsightSuggestion = "suggestion"
	InsightSummary    = "summary"
	InsightInfo       = "info"
	InsightError      = "error"
)

var insightTypes = map[string]bool{
	InsightProfit:     true,
	InsightExpense:    true,
	InsightIncome:     true,
	InsightTrend:      true,
	InsightWarning:    true,
	InsightSuggestion: true,
	InsightSummary:    true,
	InsightInfo:       true,
	InsightError:      true,
}

// InsightRequest represents the request body for POST /api/smart-insights
type InsightRequest struct {
	UserID string `json:"userId" example:"6f1c2d7e-4b7a-4f37-9a61-0c1f4d1f2e3a"`
	Period string `json:"period" example:"week"`
}

// InsightRecord is a single human-readable observation about the user's data
type InsightRecord struct {
	Type    string `json:"type" yaml:"type"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Icon    string `json:"icon" yaml:"icon"`
}

// SummaryResponse is the rounded summary returned to clients
type SummaryResponse struct {
	TotalIncome    int64   `json:"totalIncome"`
	TotalExpense   int64   `json:"totalExpense"`
	Profit         int64   `json:"profit"`
	ProfitMargin   float64 `json:"profitMargin"`
	ProfitableDays int     `json:"profitableDays"`
	TotalDays      int     `json:"totalDays"`
}

// InsightResponse is the success body for POST /api/smart-insights
type InsightResponse struct {
	Insights  []InsightRecord `json:"insights"`
	Summary   SummaryResponse `json:"summary"`
	Period    string          `json:"period"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

// ErrorResponse is the failure envelope. It keeps the success shape so
// clients can always render insights and a summary.
type ErrorResponse struct {
	Error    string          `json:"error"`
	Details  string          `json:"details"`
	Insights []InsightRecord `json:"insights"`
	Summary  SummaryResponse `json:"summary"`
}

// CategorySummary is one income or expense category total for a date range
type CategorySummary struct {
	Name        string
	TotalAmount decimal.Decimal
	Percentage  decimal.Decimal
}

// DailyTrend is the income, expense and profit of one calendar day
type DailyTrend struct {
	Date         time.Time
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Profit       decimal.Decimal
}

// SavingsRate is the result of get_savings_rate
type SavingsRate struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Savings      decimal.Decimal
	Rate         decimal.Decimal
}

// FinancialSummary is derived fresh for every request from the category and
// trend rows.
type FinancialSummary struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Profit         decimal.Decimal
	ProfitMargin   decimal.Decimal
	AvgDailyIncome decimal.Decimal
	ProfitableDays int
	TotalDays      int
}

// IncomeBreakdown splits total income into the online and offline categories
type IncomeBreakdown struct {
	Online            decimal.Decimal
	Offline           decimal.Decimal
	OnlinePercentage  decimal.Decimal
	OfflinePercentage decimal.Decimal
}

// Breakdown holds the per-category and per-day detail used by the prompt
// and the fallback insights.
type Breakdown struct {
	TopExpenses []CategorySummary
	Income      IncomeBreakdown
	RecentTrend []DailyTrend
}
