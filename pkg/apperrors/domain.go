package apperrors

import (
	"net/http"
)

// Factories for wrapping lower-layer errors.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict marks a retry-able uniqueness or state conflict.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predefined static errors.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrIDNumberAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"ID number already in use",
	http.StatusConflict,
)

var ErrAccountDeactivated = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)

// --- Reviews ---

var ErrInvalidReviewRating = New(
	CodeValidationFailed,
	"review",
	"Rating must be an integer between 1 and 5",
	http.StatusBadRequest,
)

var ErrCaregiverNotFound = New(
	CodeNotFound,
	"caregiver",
	"Caregiver not found",
	http.StatusNotFound,
)

// --- Subscriptions ---

var ErrUnknownPlanType = New(
	CodeValidationFailed,
	"subscription",
	"Unknown subscription plan type",
	http.StatusBadRequest,
)

var ErrDuplicateTransaction = New(
	CodeConflict,
	"payment",
	"Transaction ID already recorded",
	http.StatusConflict,
)

// --- Bookings ---

var ErrInvalidBookingDuration = New(
	CodeValidationFailed,
	"booking",
	"Duration must be between 1 and 24 hours",
	http.StatusBadRequest,
)

var ErrInvalidBookingDate = New(
	CodeValidationFailed,
	"booking",
	"Start date must be a valid date not in the past",
	http.StatusBadRequest,
)
