package apperrors

import (
	"errors"
	"net/http"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicate          = errors.New("resource already exists")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrProtected          = errors.New("resource is protected")

	ErrAuthTokenMissing = errors.New("auth token missing")
	ErrAuthInvalid      = errors.New("invalid token")
	ErrForbidden        = errors.New("permission denied")
)

var defaultMessages = map[error]string{
	ErrValidation:         "Validation failed",
	ErrDuplicate:          "Resource already exists",
	ErrNotFound:           "Resource not found",
	ErrInvalidCredentials: "Invalid credentials",
	ErrAccountInactive:    "Account is not active",
	ErrProtected:          "Resource cannot be modified",
	ErrAuthTokenMissing:   "Auth token missing",
	ErrAuthInvalid:        "Invalid token",
	ErrForbidden:          "Access denied",
}

// FieldError is one failed input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CustomError carries a client-facing message and optional field detail
// on top of one of the sentinel errors above.
type CustomError struct {
	Err     error
	Message string
	Fields  []FieldError
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error { return e.Err }

// New wraps a sentinel error with a client-facing message.
func New(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// WithFields attaches field-level detail.
func (e *CustomError) WithFields(fields ...FieldError) *CustomError {
	e.Fields = append(e.Fields, fields...)
	return e
}

func Validation(message string, fields ...FieldError) error {
	return New(ErrValidation, message).WithFields(fields...)
}

func Duplicate(message string) error { return New(ErrDuplicate, message) }

func NotFound(message string) error { return New(ErrNotFound, message) }

// HTTPStatus maps an error onto the API's status codes. Unknown errors are 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountInactive),
		errors.Is(err, ErrProtected):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthTokenMissing), errors.Is(err, ErrAuthInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns what the client may see for err. Internal errors never leak.
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" && HTTPStatus(err) < http.StatusInternalServerError {
		return ce.Message
	}
	for sentinel, msg := range defaultMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "Server error"
}

// Fields returns the field-level detail attached to err, if any.
func Fields(err error) []FieldError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Fields
	}
	return nil
}
