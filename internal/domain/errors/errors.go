package errors

import (
	"net/http"

	"relay/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy unwraps to the
// receiver so errors.Is still matches the predefined error.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{BaseError: NewBaseError(e.httpCode, e.errorCode, e.message, details), base: e}
}

type detailedError struct {
	*BaseError
	base *BaseError
}

func (e *detailedError) Unwrap() error {
	return e.base
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Campaign-related errors
	ErrCampaignNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPAIGN_NOT_FOUND",
		"Campaign not found",
		"",
	)

	ErrCampaignNotDeliverable = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_STATUS_NOT_DELIVERABLE",
		"Campaign is not in a deliverable status",
		"",
	)

	ErrCampaignNotEditable = NewBaseError(
		http.StatusBadRequest,
		"CAMPAIGN_NOT_EDITABLE",
		"Only draft campaigns can be edited",
		"",
	)

	ErrCampaignNotScheduled = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_NOT_SCHEDULED",
		"Campaign is not scheduled",
		"",
	)

	ErrScheduleInPast = NewBaseError(
		http.StatusBadRequest,
		"SCHEDULE_IN_PAST",
		"Scheduled time must be in the future",
		"",
	)

	// Newsletter-related errors
	ErrNewsletterCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"NEWSLETTER_NOT_FOUND",
		"Newsletter category not found",
		"",
	)

	ErrArticleNotFound = NewBaseError(
		http.StatusNotFound,
		"ARTICLE_NOT_FOUND",
		"Article not found",
		"",
	)

	ErrArticleAlreadyPublished = NewBaseError(
		http.StatusBadRequest,
		"ARTICLE_ALREADY_PUBLISHED",
		"Article already published",
		"",
	)

	ErrArticleNotEditable = NewBaseError(
		http.StatusBadRequest,
		"ARTICLE_NOT_EDITABLE",
		"Only draft articles can be edited",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"Invalid status",
		"",
	)

	// Preference-related errors
	ErrPreferenceNotFound = NewBaseError(
		http.StatusNotFound,
		"PREFERENCE_NOT_FOUND",
		"Preferences not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidCityFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CITY_FILTER",
		"city_filters must contain supported city names",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
