package model

// RequestStatus tracks the lifecycle of a collection's most recent fetch.
type RequestStatus string

const (
	StatusIdle      RequestStatus = "idle"
	StatusLoading   RequestStatus = "loading"
	StatusSucceeded RequestStatus = "succeeded"
	StatusFailed    RequestStatus = "failed"
)
