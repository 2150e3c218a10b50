package services

import "errors"

// Sentinel errors handlers translate into HTTP status codes. Anything else
// coming out of a service is treated as a persistence failure (500).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserExists         = errors.New("user with this username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDebtorNotFound     = errors.New("debtor does not exist")
	ErrSelfLoan           = errors.New("you cannot lend money to yourself")
	ErrDueDateRequired    = errors.New("either due date or recurrence pattern is required")
)
