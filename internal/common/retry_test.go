package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestWithRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 2 {
			return timeoutErr{}
		}
		return nil
	}, 3, time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetryGivesUpOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New("bad request")
	err := WithRetry(context.Background(), func() error {
		calls++
		return permanent
	}, 5, time.Millisecond)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return timeoutErr{}
	}, 3, time.Millisecond)

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetrySingleAttemptByDefault(t *testing.T) {
	calls := 0
	_ = WithRetry(context.Background(), func() error {
		calls++
		return timeoutErr{}
	}, 0, time.Millisecond)

	assert.Equal(t, 1, calls)
}

func TestWithRetryHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := WithRetry(ctx, func() error {
		calls++
		return timeoutErr{}
	}, 3, time.Hour)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
