package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erdkit/erdkit/common/logging"
)

var errTransient = errors.New("transient")

func immediateRetry(maxRetries uint32) RetryConfig {
	return RetryConfig{
		ShouldRetry: LimitRetries(maxRetries),
		NextDelay:   func(uint32) time.Duration { return 0 },
	}
}

func TestRetryRunner_EventualSuccess(t *testing.T) {
	t.Parallel()

	runner := NewRetryRunner(immediateRetry(5), logging.Nop())

	attempts := 0
	err := runner.Do(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errTransient
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryRunner_RetriesExhausted(t *testing.T) {
	t.Parallel()

	runner := NewRetryRunner(immediateRetry(3), logging.Nop())

	attempts := 0
	err := runner.Do(context.Background(), func(context.Context) error {
		attempts++
		return errTransient
	})
	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, attempts)
}

func TestRetryRunner_ContextCancelled(t *testing.T) {
	t.Parallel()

	runner := NewRetryRunner(immediateRetry(100), logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	err := runner.Do(ctx, func(context.Context) error {
		cancel()
		return errTransient
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDoNotRetryIf(t *testing.T) {
	t.Parallel()

	fatal := errors.New("fatal")
	policy := ComposeRetryPolicies(LimitRetries(10), DoNotRetryIf(fatal))

	assert.True(t, policy(1, errTransient))
	assert.False(t, policy(1, fatal))
	assert.False(t, policy(10, errTransient))
}

func TestDelayExponential(t *testing.T) {
	t.Parallel()

	next := DelayExponential(time.Millisecond, 100*time.Millisecond)

	assert.Equal(t, time.Millisecond, next(1))
	assert.Equal(t, 100*time.Millisecond, next(10))
}
