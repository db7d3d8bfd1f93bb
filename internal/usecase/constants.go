package usecase

import "time"

const (
	// DefaultHistoryLimit is the recency window: how many records a history
	// read returns when the caller does not ask for fewer.
	DefaultHistoryLimit = 5

	// appendTimeout bounds the background history write so an unreachable
	// backend cannot pin goroutines indefinitely.
	appendTimeout = 10 * time.Second
)
