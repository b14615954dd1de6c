// Package driver implements the driver-side dispatch protocol: pushing
// messages to worker nodes, pulling correlated replies, and waiting for
// reply batches with a deadline.
package driver

import (
	"context"
	"time"

	"github.com/fedlink/fedlink/internal/shared/message"
)

// Driver is a client-side handle bound to one run. It is not safe for
// concurrent use; callers needing concurrency should use one Driver
// per goroutine.
type Driver interface {
	// Run returns the metadata of the bound run, fetching it on first
	// use and caching it for the driver's lifetime.
	Run(ctx context.Context) (message.Run, error)

	// CreateMessage builds an outgoing message stamped with the bound
	// run id. The message id stays empty until the superlink assigns
	// one on push. A non-positive ttl selects message.DefaultTTL.
	CreateMessage(ctx context.Context, content []byte, dstNodeID int64, groupID string, ttl time.Duration) (*message.Message, error)

	// GetNodeIDs lists the nodes currently registered for the run.
	GetNodeIDs(ctx context.Context) ([]int64, error)

	// PushMessages sends a batch of messages and returns the assigned
	// message ids, positionally matching the input order.
	PushMessages(ctx context.Context, msgs []*message.Message) ([]string, error)

	// PullMessages returns whichever replies for the given ids exist
	// right now. It never blocks waiting for missing replies.
	PullMessages(ctx context.Context, ids []string) ([]*message.Message, error)

	// SendAndReceive pushes msgs and polls until every reply arrived
	// or timeout elapsed, returning the replies collected so far. A
	// non-positive timeout polls until ctx is done. A partial result
	// at timeout is not an error.
	SendAndReceive(ctx context.Context, msgs []*message.Message, timeout time.Duration) ([]*message.Message, error)

	// Close releases the transport if one was ever established.
	Close() error
}
