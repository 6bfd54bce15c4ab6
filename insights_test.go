package main

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "6f1c2d7e-4b7a-4f37-9a61-0c1f4d1f2e3a"

const modelOutput = "Here are your insights:\n```json\n" + `{
  "insights": [
    {"type": "profit", "title": "Strong week", "message": "You kept ₹4000 of ₹10000 income.", "icon": "💰"},
    {"type": "expense", "title": "Rent dominates", "message": "Rent is 66.7% of spending.", "icon": "🏠"}
  ]
}` + "\n```\nHope this helps!"

// TestSmartInsights tests the POST /api/smart-insights endpoint
func TestSmartInsights(t *testing.T) {
	t.Run("should return generated insights and summary", func(t *testing.T) {
		q := sampleQuerier()
		g := &fakeGenerator{text: modelOutput}
		useTestDependencies(t, q, g, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{
			"userId": testUserID,
			"period": "week",
		}))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var body InsightResponse
		assertNoError(t, parseJSONResponse(resp, &body))

		require.Len(t, body.Insights, 2)
		assert.Equal(t, InsightRecord{Type: "profit", Title: "Strong week", Message: "You kept ₹4000 of ₹10000 income.", Icon: "💰"}, body.Insights[0])
		assert.Equal(t, "expense", body.Insights[1].Type)

		assert.Equal(t, SummaryResponse{
			TotalIncome:    10000,
			TotalExpense:   6000,
			Profit:         4000,
			ProfitMargin:   40.0,
			ProfitableDays: 1,
			TotalDays:      3,
		}, body.Summary)
		assert.Equal(t, "week", body.Period)
		assert.Equal(t, "2025-03-24", body.StartDate)
		assert.Equal(t, "2025-03-31", body.EndDate)
	})

	t.Run("should send the aggregated figures in the prompt", func(t *testing.T) {
		q := sampleQuerier()
		g := &fakeGenerator{text: modelOutput}
		useTestDependencies(t, q, g, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))
		assertStatusCode(t, http.StatusOK, resp.Code)

		prompt := g.lastPrompt()
		assert.Contains(t, prompt, "FINANCIAL DATA (Last 7 Days)")
		assert.Contains(t, prompt, "Total Income: ₹10000")
		assert.Contains(t, prompt, "Profit Margin: 40.0%")
		assert.Contains(t, prompt, "Online Income: ₹6000 (60.0%)")
		assert.Contains(t, prompt, "1. Rent: ₹4000 (66.7%)")
		assert.Contains(t, prompt, "Profitable Days: 1 out of 3")

		// Newest day first
		assert.Less(t, strings.Index(prompt, "2025-03-31"), strings.Index(prompt, "2025-03-29"))
	})

	t.Run("should default to week when period is omitted", func(t *testing.T) {
		q := sampleQuerier()
		useTestDependencies(t, q, &fakeGenerator{text: modelOutput}, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var body InsightResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "week", body.Period)
		assert.Equal(t, int32(7), q.trendParams.DaysCount)
	})

	t.Run("should query a calendar month back for month", func(t *testing.T) {
		q := sampleQuerier()
		useTestDependencies(t, q, &fakeGenerator{text: modelOutput}, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{
			"userId": testUserID,
			"period": "month",
		}))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var body InsightResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "2025-02-28", body.StartDate)
		assert.Equal(t, "2025-03-31", body.EndDate)

		assert.Equal(t, int32(30), q.trendParams.DaysCount)
		assert.Equal(t, uuid.MustParse(testUserID), uuid.UUID(q.expenseParams.TargetUserID.Bytes))
		assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), q.expenseParams.StartDate.Time)
	})

	t.Run("should use a single day window for unrecognized periods", func(t *testing.T) {
		useTestDependencies(t, sampleQuerier(), &fakeGenerator{text: modelOutput}, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{
			"userId": testUserID,
			"period": "year",
		}))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var body InsightResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "year", body.Period)
		assert.Equal(t, "2025-03-31", body.StartDate)
		assert.Equal(t, body.StartDate, body.EndDate)
	})

	t.Run("should return the no-data insight when there are no categories", func(t *testing.T) {
		g := &fakeGenerator{text: modelOutput}
		useTestDependencies(t, &fakeQuerier{}, g, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{
			"userId": testUserID,
			"period": "today",
		}))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var body InsightResponse
		assertNoError(t, parseJSONResponse(resp, &body))

		require.Len(t, body.Insights, 1)
		assert.Equal(t, InsightInfo, body.Insights[0].Type)
		assert.Equal(t, catalog.NoData, body.Insights[0])
		assert.Equal(t, SummaryResponse{}, body.Summary)
		assert.Empty(t, g.prompts, "generator must not be called without data")
	})

	t.Run("should fall back when the generation service fails", func(t *testing.T) {
		g := &fakeGenerator{err: &GenerationError{Provider: "Gemini", StatusCode: http.StatusTooManyRequests, Body: "quota exceeded"}}
		useTestDependencies(t, sampleQuerier(), g, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var body InsightResponse
		assertNoError(t, parseJSONResponse(resp, &body))

		require.Len(t, body.Insights, 4)
		assert.Equal(t, InsightSummary, body.Insights[0].Type)
		assert.Equal(t, "This week's summary", body.Insights[0].Title)
		assert.Equal(t, InsightProfit, body.Insights[1].Type)
		assert.Equal(t, "Rent is your largest expense", body.Insights[2].Title)
		assert.Contains(t, body.Insights[3].Message, "Online income is leading!")
		assert.Equal(t, int64(4000), body.Summary.Profit)
	})

	t.Run("should fall back when the model output is not insight JSON", func(t *testing.T) {
		useTestDependencies(t, sampleQuerier(), &fakeGenerator{text: "Sorry, I cannot help with that."}, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var body InsightResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		require.NotEmpty(t, body.Insights)
		assert.Equal(t, InsightSummary, body.Insights[0].Type)
	})

	t.Run("should report a missing API key before querying the database", func(t *testing.T) {
		q := sampleQuerier()
		useTestDependencies(t, q, nil, &ConfigError{Provider: "Gemini", EnvVar: "GEMINI_API_KEY"})

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))

		assertStatusCode(t, http.StatusInternalServerError, resp.Code)

		var body ErrorResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "Gemini API key not configured", body.Error)
		require.Len(t, body.Insights, 1)
		assert.Equal(t, InsightError, body.Insights[0].Type)
		assert.Equal(t, SummaryResponse{}, body.Summary)
		assert.Zero(t, q.callCount())
	})

	t.Run("should return 500 when a database call fails", func(t *testing.T) {
		q := sampleQuerier()
		q.errs = map[string]error{fnIncomeSummary: errors.New("connection reset by peer")}
		useTestDependencies(t, q, &fakeGenerator{text: modelOutput}, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))

		assertStatusCode(t, http.StatusInternalServerError, resp.Code)

		var body ErrorResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "Failed to fetch data from database", body.Error)
		assert.Contains(t, body.Details, "connection reset by peer")
		require.Len(t, body.Insights, 1)
		assert.Equal(t, catalog.Failure, body.Insights[0])
	})

	t.Run("should point at migrations when an analytics function is missing", func(t *testing.T) {
		q := sampleQuerier()
		q.errs = map[string]error{fnSavingsRate: &pgconn.PgError{
			Code:    "42883",
			Message: "function get_savings_rate(uuid, date, date) does not exist",
		}}
		useTestDependencies(t, q, &fakeGenerator{text: modelOutput}, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))

		assertStatusCode(t, http.StatusInternalServerError, resp.Code)

		var body ErrorResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "Database functions not available. Please ensure migrations are applied", body.Error)
		assert.Contains(t, body.Details, "get_savings_rate")
	})

	t.Run("should return 400 for invalid requests", func(t *testing.T) {
		useTestDependencies(t, sampleQuerier(), &fakeGenerator{text: modelOutput}, nil)

		tests := []struct {
			name string
			body string
		}{
			{"malformed JSON", `{"userId": `},
			{"missing userId", `{"period": "week"}`},
			{"userId not a UUID", `{"userId": "user-1"}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := makeRequest("POST", "/api/smart-insights", strings.NewReader(tt.body))

				assertStatusCode(t, http.StatusBadRequest, resp.Code)

				var body ErrorResponse
				assertNoError(t, parseJSONResponse(resp, &body))
				assert.Equal(t, "Invalid request body", body.Error)
				assert.Len(t, body.Insights, 1)
			})
		}
	})

	t.Run("should set CORS and request id headers on every response", func(t *testing.T) {
		useTestDependencies(t, &fakeQuerier{}, &fakeGenerator{}, nil)

		resp := makeRequest("POST", "/api/smart-insights", jsonBody(map[string]string{"userId": testUserID}))

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "authorization, x-client-info, apikey, content-type", resp.Header().Get("Access-Control-Allow-Headers"))
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")

		_, err := uuid.Parse(resp.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})

	t.Run("should reuse a valid inbound request id", func(t *testing.T) {
		useTestDependencies(t, &fakeQuerier{}, &fakeGenerator{}, nil)
		id := uuid.NewString()

		resp := makeRequestWithHeaders("POST", "/api/smart-insights",
			jsonBody(map[string]string{"userId": testUserID}),
			map[string]string{"X-Request-ID": id})

		assert.Equal(t, id, resp.Header().Get("X-Request-ID"))
	})
}

// TestSmartInsightsPreflight tests OPTIONS /api/smart-insights
func TestSmartInsightsPreflight(t *testing.T) {
	t.Run("should answer 200 without an Origin header", func(t *testing.T) {
		resp := makeRequest("OPTIONS", "/api/smart-insights", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should answer a browser preflight with 200", func(t *testing.T) {
		resp := makeRequestWithHeaders("OPTIONS", "/api/smart-insights", nil, map[string]string{
			"Origin":                         "https://app.example.com",
			"Access-Control-Request-Method":  "POST",
			"Access-Control-Request-Headers": "authorization, content-type",
		})

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(resp.Header().Get("Access-Control-Allow-Headers")), "authorization")
	})

	t.Run("should send a single Allow-Origin on a cross-origin POST", func(t *testing.T) {
		useTestDependencies(t, sampleQuerier(), &fakeGenerator{text: modelOutput}, nil)

		resp := makeRequestWithHeaders("POST", "/api/smart-insights", jsonBody(map[string]string{
			"userId": testUserID,
		}), map[string]string{"Origin": "https://app.example.com"})

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Equal(t, []string{"*"}, resp.Header().Values("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(resp.Header().Get("Access-Control-Expose-Headers")), strings.ToLower(requestIDHeader))
	})
}

// TestHealth tests the GET /health endpoint
func TestHealth(t *testing.T) {
	t.Run("should report unavailable without a database", func(t *testing.T) {
		prev := dbPool
		dbPool = nil
		t.Cleanup(func() { dbPool = prev })

		resp := makeRequest("GET", "/health", nil)

		assertStatusCode(t, http.StatusServiceUnavailable, resp.Code)
	})

	t.Run("should report ok when the database answers", func(t *testing.T) {
		if testDB == nil {
			t.Skip("TEST_DB_HOST not set")
		}
		prev := dbPool
		dbPool = testDB
		t.Cleanup(func() { dbPool = prev })

		resp := makeRequest("GET", "/health", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
	})
}

func TestSwaggerDoc(t *testing.T) {
	resp := makeRequest("GET", "/swagger/doc.json", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "/api/smart-insights")
}
