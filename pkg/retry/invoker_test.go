package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func noSleep(recorded *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		if recorded != nil {
			*recorded = append(*recorded, d)
		}
		return nil
	}
}

func TestInvoke_TransientFailuresThenSuccess(t *testing.T) {
	inv := NewInvoker(DefaultPolicy(), WithSleep(noSleep(nil)))

	calls := 0
	result, err := Do(context.Background(), inv, func() (string, error) {
		calls++
		if calls <= 2 {
			return "", status.Error(codes.Unavailable, "connection refused")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestInvoke_ExhaustionReturnsLastError(t *testing.T) {
	inv := NewInvoker(DefaultPolicy(), WithSleep(noSleep(nil)))

	calls := 0
	transient := status.Error(codes.Unavailable, "superlink down")
	err := inv.Invoke(context.Background(), func() error {
		calls++
		return transient
	})

	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Equal(t, 3, calls)
}

func TestInvoke_NonTransientNotRetried(t *testing.T) {
	inv := NewInvoker(DefaultPolicy(), WithSleep(noSleep(nil)))

	calls := 0
	semantic := status.Error(codes.NotFound, "no such run")
	err := inv.Invoke(context.Background(), func() error {
		calls++
		return semantic
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestInvoke_PlainErrorsNotRetried(t *testing.T) {
	inv := NewInvoker(DefaultPolicy(), WithSleep(noSleep(nil)))

	calls := 0
	err := inv.Invoke(context.Background(), func() error {
		calls++
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestInvoke_BackoffGrowsAndCaps(t *testing.T) {
	policy := Policy{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		Factor:      2,
		MaxDelay:    4 * time.Second,
	}
	var delays []time.Duration
	inv := NewInvoker(policy, WithSleep(noSleep(&delays)))

	_ = inv.Invoke(context.Background(), func() error {
		return status.Error(codes.Unavailable, "still down")
	})

	assert.Equal(t, []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		4 * time.Second,
	}, delays)
}

func TestInvoke_CanceledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inv := NewInvoker(DefaultPolicy(), WithSleep(func(ctx context.Context, d time.Duration) error {
		return ctx.Err()
	}))

	calls := 0
	transient := status.Error(codes.Unavailable, "down")
	cancel()
	err := inv.Invoke(ctx, func() error {
		calls++
		return transient
	})

	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Equal(t, 1, calls)
}

func TestDo_NoRetryOnSuccess(t *testing.T) {
	inv := NewInvoker(DefaultPolicy(), WithSleep(noSleep(nil)))

	calls := 0
	nodes, err := Do(context.Background(), inv, func() ([]int64, error) {
		calls++
		return []int64{404, 200}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{404, 200}, nodes)
	assert.Equal(t, 1, calls)
}
