package errors

import (
	"net/http"

	"flora/internal/errors"
)

// Business error codes. Every error the service layer produces belongs to
// one of these kinds, so callers never have to parse message text.
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeInvalidOperation = "INVALID_OPERATION"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeConflict         = "CONFLICT"
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

// NewInvalidArgument creates an INVALID_ARGUMENT error with the given message.
func NewInvalidArgument(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeInvalidArgument, message, "")
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error values. The message texts are part of the service
// contract and are asserted by the service tests, so they must not change.
var (
	// Precondition failures on missing or malformed input.
	ErrNilRequest = NewInvalidArgument("Request must not be null")
	ErrNilEntity  = NewInvalidArgument("Entity must not be null")
	ErrEmptyID    = NewInvalidArgument("Invalid id value, id must not be empty")

	ErrEmailRequired          = NewInvalidArgument("Email must not be null or empty")
	ErrUsernameRequired       = NewInvalidArgument("Username must not be null or empty")
	ErrPasswordRequired       = NewInvalidArgument("Password must not be null or empty")
	ErrRegisterFieldsRequired = NewInvalidArgument("All fields must not be null or empty")
	ErrIdentityRequired       = NewInvalidArgument("Username or email must not be null or empty")

	ErrPlantNameRequired = NewInvalidArgument("Plant name must not be null or empty")
	ErrContentRequired   = NewInvalidArgument("Content must not be null or empty")
	ErrLikeFieldsRequired = NewInvalidArgument(
		"Username and plant id must not be null or empty",
	)
	ErrQuizTitleRequired      = NewInvalidArgument("Title must not be null or empty")
	ErrQuestionFieldsRequired = NewInvalidArgument("Question and answers must not be null or empty")
	ErrBadgeNameRequired      = NewInvalidArgument("Badge name must not be null or empty")

	// The only INVALID_OPERATION in the system: the quiz answer-index range check.
	ErrAnswerIndexOutOfRange = NewBaseError(
		http.StatusUnprocessableEntity,
		CodeInvalidOperation,
		"CorrectAnswerIndex must not be greater than 3 or less than 0",
		"",
	)

	// Referenced-entity resolution failures.
	ErrUserNotFound     = NewBaseError(http.StatusNotFound, CodeNotFound, "User not found", "")
	ErrPlantNotFound    = NewBaseError(http.StatusNotFound, CodeNotFound, "Plant not found", "")
	ErrBadgeNotFound    = NewBaseError(http.StatusNotFound, CodeNotFound, "Badge not found", "")
	ErrQuizNotFound     = NewBaseError(http.StatusNotFound, CodeNotFound, "Mini Quiz not found", "")
	ErrQuestionNotFound = NewBaseError(http.StatusNotFound, CodeNotFound, "Quiz question not found", "")
	ErrCommentNotFound  = NewBaseError(http.StatusNotFound, CodeNotFound, "Comment not found", "")
	ErrLikeNotFound     = NewBaseError(http.StatusNotFound, CodeNotFound, "Like not found", "")
	ErrGrantNotFound    = NewBaseError(http.StatusNotFound, CodeNotFound, "Badge grant not found", "")

	// Authentication collapses unknown-user and wrong-password into one value
	// so callers cannot probe which usernames exist.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Invalid username or password",
		"",
	)

	// Storage-level constraint violations surfaced as conflicts.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeConflict,
		"Username or email already taken",
		"",
	)
	ErrBadgeAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeConflict,
		"Badge name already taken",
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

// Unwrap exposes the underlying database error for errors.Is/As.
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
