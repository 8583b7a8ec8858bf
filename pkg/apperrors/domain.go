package apperrors

import (
	"net/http"
)

// Factories and predefined variables for common business errors of the
// swap marketplace domain.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness conflict into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation creates a 400 for operations the domain forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus creates the invalid-state-transition error. A transition
// attempted from the wrong source state always ends up here.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrUserNotFound - the referenced user id is unknown.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrSwapRequestNotFound - the referenced swap request id is unknown.
var ErrSwapRequestNotFound = New(
	CodeNotFound,
	"swap",
	"Swap request not found",
	http.StatusNotFound,
)

// ErrNotRequestParticipant - the acting user has no rights over this
// swap request transition.
var ErrNotRequestParticipant = New(
	CodeForbidden,
	"swap",
	"Only a participant of the swap request may perform this action",
	http.StatusForbidden,
)

// ErrCannotSwapWithSelf - a user tried to open a swap request with themselves.
var ErrCannotSwapWithSelf = New(
	CodeValidationFailed,
	"swap",
	"Cannot send a swap request to yourself",
	http.StatusBadRequest,
)

// ErrSkillNotFound - a skill removal referenced a name absent from the list.
var ErrSkillNotFound = New(
	CodeNotFound,
	"user",
	"Skill is not in the list",
	http.StatusNotFound,
)

// ErrInsufficientPermissions - a non-admin attempted an admin action.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrEmailAlreadyExists - registration with a taken email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with this email already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials - login failed.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrUserBanned - a banned user attempted an operation the ban blocks.
var ErrUserBanned = New(
	CodeForbidden,
	"user",
	"This account is banned",
	http.StatusForbidden,
)
