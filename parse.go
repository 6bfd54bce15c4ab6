package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSONObject      = errors.New("no JSON object found in model output")
	ErrMalformedInsights = errors.New("model output is not valid insight JSON")
	ErrNoValidInsights   = errors.New("model output contained no valid insights")
)

type insightPayload struct {
	Insights []InsightRecord `json:"insights"`
}

// parseInsights extracts the insight list from model output. The model may
// wrap its JSON in prose or code fences, so decoding starts at the first '{'
// and stops after one complete object. Records that fail validation are
// dropped; the rest are returned unmodified.
func parseInsights(text string) ([]InsightRecord, error) {
	start := strings.Index(text, "{")
	if start == -1 {
		return nil, ErrNoJSONObject
	}

	var payload insightPayload
	decoder := json.NewDecoder(strings.NewReader(text[start:]))
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInsights, err)
	}
	if payload.Insights == nil {
		return nil, fmt.Errorf("%w: missing insights array", ErrMalformedInsights)
	}

	insights := make([]InsightRecord, 0, len(payload.Insights))
	for _, insight := range payload.Insights {
		if err := validateInsight(insight); err != nil {
			continue
		}
		insights = append(insights, insight)
	}

	if len(insights) == 0 {
		return nil, ErrNoValidInsights
	}
	return insights, nil
}
