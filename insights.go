package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Smart insights handler functions

// @Summary Generate smart insights
// @Description Summarize a user's income and expenses for a period and return generated business insights. Falls back to insights computed from the numbers when the generation service fails.
// @Tags insights
// @Accept json
// @Produce json
// @Param request body InsightRequest true "User ID and period (today, week or month; defaults to week)"
// @Success 200 {object} InsightResponse "Insights and summary"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Configuration or database error"
// @Router /api/smart-insights [post]
func smartInsights(c *gin.Context) {
	ctx := c.Request.Context()
	reqID := requestIDFrom(c)

	var request InsightRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	userID, err := validateUserID(request.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Checked before any remote call
	if generatorErr != nil || generator == nil {
		log.Printf("[%s] Insight generator unavailable: %v", reqID, generatorErr)
		respondError(c, generatorErr)
		return
	}

	period := parsePeriod(request.Period)
	if !period.known() {
		log.Printf("[%s] Unrecognized period %q, using today's window", reqID, period)
	}
	dateRange := resolveDateRange(period, clock(), location)
	log.Printf("[%s] Generating smart insights for period %s (%s to %s)", reqID, period, dateRange.StartDate(), dateRange.EndDate())

	data, err := fetchFinancialData(ctx, queries, userID, period, dateRange)
	if err != nil {
		log.Printf("[%s] Error fetching financial data: %v", reqID, err)
		respondError(c, err)
		return
	}
	log.Printf("[%s] Fetched %d income, %d expense and %d trend rows (savings rate %s%%)",
		reqID, len(data.Income), len(data.Expense), len(data.Trend), data.Savings.Rate.StringFixed(1))

	response := InsightResponse{
		Period:    string(period),
		StartDate: dateRange.StartDate(),
		EndDate:   dateRange.EndDate(),
	}

	if data.empty() {
		response.Insights = []InsightRecord{catalog.NoData}
		c.JSON(http.StatusOK, response)
		return
	}

	summary := summarize(data.Income, data.Expense, data.Trend)
	breakdown := selectBreakdown(data.Income, data.Expense, data.Trend, summary.TotalIncome)

	prompt, err := renderPrompt(catalog, period, summary, breakdown)
	if err != nil {
		log.Printf("[%s] Error rendering prompt: %v", reqID, err)
		respondError(c, err)
		return
	}

	response.Insights = generateInsights(ctx, reqID, prompt, period, summary, breakdown)
	response.Summary = summary.response()
	c.JSON(http.StatusOK, response)
}

// generateInsights asks the generator for insights and falls back to
// locally synthesized ones on a failed call or unusable output.
func generateInsights(ctx context.Context, reqID, prompt string, period Period, summary FinancialSummary, breakdown Breakdown) []InsightRecord {
	text, err := generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[%s] %s, using fallback insights: %v", reqID, classifyError(err).Message, err)
		return fallbackInsights(catalog, period, summary, breakdown)
	}

	insights, err := parseInsights(text)
	if err != nil {
		log.Printf("[%s] Error parsing generated insights, using fallback insights: %v", reqID, err)
		return fallbackInsights(catalog, period, summary, breakdown)
	}

	return insights
}

// respondError writes the failure envelope for err
func respondError(c *gin.Context, err error) {
	classified := classifyError(err)
	c.JSON(classified.Status, ErrorResponse{
		Error:    classified.Message,
		Details:  classified.Details,
		Insights: []InsightRecord{catalog.Failure},
		Summary:  SummaryResponse{},
	})
}
