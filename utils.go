package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE for a call to a function that does not exist
const undefinedFunctionCode = "42883"

var ErrInvalidRequest = errors.New("invalid request")

// Validation functions

// validateUserID parses the userId from the request body
func validateUserID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, fmt.Errorf("%w: userId is required", ErrInvalidRequest)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: userId must be a UUID", ErrInvalidRequest)
	}
	return id, nil
}

// validateInsight checks an insight against the record schema
func validateInsight(insight InsightRecord) error {
	if !insightTypes[insight.Type] {
		return fmt.Errorf("unknown insight type %q", insight.Type)
	}
	if strings.TrimSpace(insight.Title) == "" {
		return fmt.Errorf("insight title cannot be empty")
	}
	if strings.TrimSpace(insight.Message) == "" {
		return fmt.Errorf("insight message cannot be empty")
	}
	return nil
}

// Error classification

// DataSourceError reports a failed call to one of the analytics functions
type DataSourceError struct {
	Function string
	Err      error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("failed to call %s: %v", e.Function, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// missingFunction reports whether the database lacks the function, which
// means the migrations have not been applied.
func (e *DataSourceError) missingFunction() bool {
	var pgErr *pgconn.PgError
	return errors.As(e.Err, &pgErr) && pgErr.Code == undefinedFunctionCode
}

// apiError is the classified, client-facing form of a pipeline error
type apiError struct {
	Status  int
	Message string
	Details string
}

// classifyError converts pipeline errors to a status code and the
// error/details texts of the failure envelope.
func classifyError(err error) apiError {
	if err == nil {
		return apiError{Status: http.StatusInternalServerError, Message: "Unknown error occurred"}
	}

	var (
		configErr     *ConfigError
		dataSourceErr *DataSourceError
		generationErr *GenerationError
	)

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return apiError{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
			Details: err.Error(),
		}
	case errors.As(err, &configErr):
		return apiError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("%s API key not configured", configErr.Provider),
			Details: fmt.Sprintf("Please set %s in the service environment", configErr.EnvVar),
		}
	case errors.As(err, &dataSourceErr):
		if dataSourceErr.missingFunction() {
			return apiError{
				Status:  http.StatusInternalServerError,
				Message: "Database functions not available. Please ensure migrations are applied",
				Details: fmt.Sprintf("Function %s is missing; apply the migrations in db/migrations", dataSourceErr.Function),
			}
		}
		return apiError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch data from database",
			Details: err.Error(),
		}
	case errors.As(err, &generationErr):
		return apiError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("%s API request failed", generationErr.Provider),
			Details: err.Error(),
		}
	default:
		details := ""
		if cause := errors.Unwrap(err); cause != nil {
			details = cause.Error()
		}
		return apiError{
			Status:  http.StatusInternalServerError,
			Message: err.Error(),
			Details: details,
		}
	}
}
