package main

import (
	"context"
	"errors"
	"fmt"
)

// Fixed sampling parameters. Gemini receives all four. Anthropic receives
// temperature, top_k and max_tokens only, since its newer models reject
// temperature and top_p in the same request.
const (
	generationTemperature = 0.7
	generationTopK        = 40
	generationTopP        = 0.95
	generationMaxTokens   = 2048
)

const (
	providerGemini    = "gemini"
	providerAnthropic = "anthropic"
)

var (
	ErrMissingAPIKey = errors.New("API key not configured")
	ErrGeneration    = errors.New("text generation request failed")
)

// InsightGenerator sends a prompt to a text-generation service and returns
// the raw text it produced.
type InsightGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ConfigError reports a missing provider credential
type ConfigError struct {
	Provider string
	EnvVar   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s not configured", e.EnvVar)
}

func (e *ConfigError) Unwrap() error { return ErrMissingAPIKey }

// GenerationError reports a failed call to a provider. StatusCode is zero
// when no response was received.
type GenerationError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *GenerationError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s API error: %d - %s", e.Provider, e.StatusCode, e.Body)
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s API error: %d - %v", e.Provider, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s API error: %d", e.Provider, e.StatusCode)
	default:
		return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
	}
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGeneration}
	}
	return []error{ErrGeneration, e.Err}
}

// newGenerator builds the configured provider. A missing key is returned as
// a *ConfigError so the server can still start and report it per request.
func newGenerator(cfg Config) (InsightGenerator, error) {
	switch cfg.Provider {
	case providerAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, &ConfigError{Provider: "Anthropic", EnvVar: "ANTHROPIC_API_KEY"}
		}
		return newAnthropicGenerator(AnthropicConfig{
			APIKey:  cfg.AnthropicAPIKey,
			Model:   cfg.AnthropicModel,
			BaseURL: cfg.AnthropicBaseURL,
			Timeout: cfg.GenerationTimeout,
		}), nil
	case providerGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, &ConfigError{Provider: "Gemini", EnvVar: "GEMINI_API_KEY"}
		}
		return newGeminiGenerator(GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.GenerationTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown insights provider %q", cfg.Provider)
	}
}
