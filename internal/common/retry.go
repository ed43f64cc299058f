package common

import (
	"context"
	"errors"
	"net"
	"time"
)

// IsTemporary reports whether err is a transient network failure
func IsTemporary(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	if temp, ok := err.(interface{ Temporary() bool }); ok {
		return temp.Temporary()
	}
	return false
}

// IsRetryable reports whether an operation failing with err may be retried
func IsRetryable(err error) bool {
	return IsTemporary(err) || errors.Is(err, net.ErrClosed)
}

// WithRetry runs operation up to maxRetries times, waiting backoff*(attempt)
// between retryable failures. A maxRetries below 1 still runs once.
func WithRetry(ctx context.Context, operation func() error, maxRetries int, backoff time.Duration) error {
	if maxRetries < 1 {
		maxRetries = 1
	}
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = operation(); err == nil {
			return nil
		}
		if !IsRetryable(err) || i == maxRetries-1 {
			return err
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(backoff * time.Duration(i+1)):
		}
	}
	return err
}
