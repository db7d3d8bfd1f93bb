package domain

import "errors"

var (
	// Validation errors
	ErrInvalidAmount = errors.New("amount must be a positive decimal")
	ErrInvalidRate   = errors.New("gst rate must be a non-negative decimal")

	// History errors
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrPersistence          = errors.New("history storage failure")
	ErrEmptyHistory         = errors.New("no history available to summarize")

	// Summarization errors
	ErrSummarization = errors.New("summarization failure")
)
