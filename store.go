package main

import (
	"context"

	"smartinsights/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"
)

// Analytics function names, as reported in errors
const (
	fnExpenseSummary = "get_expense_summary_by_category"
	fnIncomeSummary  = "get_income_summary_by_category"
	fnDailyTrend     = "get_daily_trend"
	fnSavingsRate    = "get_savings_rate"
)

// financialData is everything the analytics functions return for one request
type financialData struct {
	Income  []CategorySummary
	Expense []CategorySummary
	Trend   []DailyTrend
	Savings SavingsRate
}

func (d *financialData) empty() bool {
	return len(d.Income) == 0 && len(d.Expense) == 0
}

// fetchFinancialData calls the four analytics functions concurrently. The
// first failure cancels the others and is returned as a *DataSourceError.
func fetchFinancialData(ctx context.Context, q generated.Querier, userID uuid.UUID, period Period, dateRange DateRange) (*financialData, error) {
	target := pgtype.UUID{Bytes: userID, Valid: true}
	start := pgtype.Date{Time: dateRange.Start, Valid: true}
	end := pgtype.Date{Time: dateRange.End, Valid: true}

	data := &financialData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := q.GetExpenseSummaryByCategory(ctx, generated.GetExpenseSummaryByCategoryParams{
			TargetUserID: target,
			StartDate:    start,
			EndDate:      end,
		})
		if err != nil {
			return &DataSourceError{Function: fnExpenseSummary, Err: err}
		}
		data.Expense = expenseCategories(rows)
		return nil
	})

	g.Go(func() error {
		rows, err := q.GetIncomeSummaryByCategory(ctx, generated.GetIncomeSummaryByCategoryParams{
			TargetUserID: target,
			StartDate:    start,
			EndDate:      end,
		})
		if err != nil {
			return &DataSourceError{Function: fnIncomeSummary, Err: err}
		}
		data.Income = incomeCategories(rows)
		return nil
	})

	g.Go(func() error {
		rows, err := q.GetDailyTrend(ctx, generated.GetDailyTrendParams{
			TargetUserID: target,
			DaysCount:    period.trendDays(),
		})
		if err != nil {
			return &DataSourceError{Function: fnDailyTrend, Err: err}
		}
		data.Trend = dailyTrends(rows)
		return nil
	})

	g.Go(func() error {
		row, err := q.GetSavingsRate(ctx, generated.GetSavingsRateParams{
			TargetUserID: target,
			StartDate:    start,
			EndDate:      end,
		})
		if err != nil {
			return &DataSourceError{Function: fnSavingsRate, Err: err}
		}
		data.Savings = savingsRate(row)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
