// Package retry wraps remote calls with bounded retry and exponential
// backoff. Only failures classified as transient are retried; anything
// else propagates immediately.
package retry

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Policy bounds the retry behavior of an Invoker. Delays grow by Factor
// per attempt, starting at BaseDelay and capped at MaxDelay.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Factor      float64
	MaxDelay    time.Duration
}

// DefaultPolicy retries up to 3 attempts with a 1s/2s backoff capped at 4s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Factor:      2,
		MaxDelay:    4 * time.Second,
	}
}

// Classifier reports whether an error is transient and worth retrying.
type Classifier func(error) bool

// TransportError is the default classifier: gRPC Unavailable, which is
// how connection refusal and mid-call disconnects surface on a channel.
func TransportError(err error) bool {
	return status.Code(err) == codes.Unavailable
}

// SleepFunc suspends the caller for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Invoker applies a Policy to arbitrary operations. Invocations are
// independent; no backoff state is shared between calls.
type Invoker struct {
	policy    Policy
	retryable Classifier
	sleep     SleepFunc
}

// Option customizes an Invoker.
type Option func(*Invoker)

// WithClassifier replaces the transient-error classifier.
func WithClassifier(c Classifier) Option {
	return func(inv *Invoker) { inv.retryable = c }
}

// WithSleep replaces the inter-attempt sleep. Tests use this to avoid
// real delays.
func WithSleep(s SleepFunc) Option {
	return func(inv *Invoker) { inv.sleep = s }
}

func NewInvoker(policy Policy, opts ...Option) *Invoker {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Factor <= 0 {
		policy.Factor = 2
	}
	inv := &Invoker{
		policy:    policy,
		retryable: TransportError,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Invoke runs op, retrying transient failures with backoff until the
// attempt budget is exhausted. The last transient error is returned on
// exhaustion; non-transient errors return immediately.
func (inv *Invoker) Invoke(ctx context.Context, op func() error) error {
	delay := inv.policy.BaseDelay
	var lastErr error

	for attempt := 1; ; attempt++ {
		lastErr = op()
		if lastErr == nil || !inv.retryable(lastErr) {
			return lastErr
		}
		if attempt >= inv.policy.MaxAttempts {
			return lastErr
		}
		if err := inv.sleep(ctx, delay); err != nil {
			return lastErr
		}
		delay = time.Duration(float64(delay) * inv.policy.Factor)
		if inv.policy.MaxDelay > 0 && delay > inv.policy.MaxDelay {
			delay = inv.policy.MaxDelay
		}
	}
}

// Do is Invoke for operations that return a value.
func Do[T any](ctx context.Context, inv *Invoker, op func() (T, error)) (T, error) {
	var result T
	err := inv.Invoke(ctx, func() error {
		var opErr error
		result, opErr = op()
		return opErr
	})
	return result, err
}
