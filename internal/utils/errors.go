package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidQuery       ErrorCode = "INVALID_QUERY"
	ErrorCodeInvalidCountry     ErrorCode = "INVALID_COUNTRY"
	ErrorCodeInvalidCategory    ErrorCode = "INVALID_CATEGORY"
	ErrorCodeVideoNotFound      ErrorCode = "VIDEO_NOT_FOUND"
	ErrorCodeExtractionFailed   ErrorCode = "EXTRACTION_FAILED"
	ErrorCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	ErrorCodeRateLimitExceeded  ErrorCode = "RATE_LIMITED"
	ErrorCodeValidationError    ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Common error constructors
func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusBadRequest, details)
}

func NewInvalidQueryError() *AppError {
	return NewError(
		ErrorCodeInvalidQuery,
		"Query parameter \"q\" is required and must not be empty",
		http.StatusBadRequest,
	)
}

func NewInvalidCountryError(code string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidCountry,
		fmt.Sprintf("Country code %q is not supported", code),
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "2-letter ISO country code, e.g. US, IN, GB",
			"provided":        code,
		},
	)
}

func NewInvalidCategoryError(category string, known []string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidCategory,
		fmt.Sprintf("Category %q is not recognized", category),
		http.StatusBadRequest,
		map[string]interface{}{
			"provided":   category,
			"categories": known,
		},
	)
}

func NewVideoNotFoundError(videoID string) *AppError {
	return NewError(
		ErrorCodeVideoNotFound,
		fmt.Sprintf("Video with ID %s not found", videoID),
		http.StatusNotFound,
	)
}

func NewExtractionError(message string) *AppError {
	if message == "" {
		message = "Could not extract media information"
	}
	return NewError(ErrorCodeExtractionFailed, message, http.StatusNotFound)
}

func NewServiceUnavailableError() *AppError {
	return NewError(
		ErrorCodeServiceUnavailable,
		"Upstream provider is unavailable, try again later",
		http.StatusServiceUnavailable,
	)
}

func NewRateLimitError() *AppError {
	return NewError(
		ErrorCodeRateLimitExceeded,
		"Too many requests",
		http.StatusTooManyRequests,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
