// Package simulation runs a whole dispatch topology in one process:
// a Driver implementation that executes client apps on a worker pool
// instead of crossing a network. The driver-facing semantics match the
// gRPC driver, so orchestration code runs unchanged against either.
package simulation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fedlink/fedlink/internal/clientapp"
	"github.com/fedlink/fedlink/internal/driver"
	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/message"
)

const defaultPollInterval = 10 * time.Millisecond

// Driver executes every pushed message as a pool task running the
// run's client app. Replies become visible to PullMessages as soon as
// the app returns, which keeps SendAndReceive's poll loop honest even
// though no transport is involved.
type Driver struct {
	run      message.Run
	nodeIDs  []int64
	registry *clientapp.Registry
	pool     *Pool

	pollInterval time.Duration
	logger       logging.Logger

	mu      sync.Mutex
	replies map[string]*message.Message
	closed  bool
}

// DriverOption customizes a simulation Driver.
type DriverOption func(*Driver)

// WithPollInterval sets the sleep between SendAndReceive polls.
func WithPollInterval(interval time.Duration) DriverOption {
	return func(d *Driver) { d.pollInterval = interval }
}

// WithLogger sets the driver's logger.
func WithLogger(logger logging.Logger) DriverOption {
	return func(d *Driver) { d.logger = logger }
}

// NewDriver simulates a run with numNodes worker nodes, ids 1..numNodes.
func NewDriver(run message.Run, numNodes int, registry *clientapp.Registry, opts ...DriverOption) *Driver {
	nodeIDs := make([]int64, numNodes)
	for i := range nodeIDs {
		nodeIDs[i] = int64(i + 1)
	}

	d := &Driver{
		run:          run,
		nodeIDs:      nodeIDs,
		registry:     registry,
		pool:         NewPool(numNodes),
		pollInterval: defaultPollInterval,
		logger:       logging.NopLogger{},
		replies:      make(map[string]*message.Message),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.pool.Start()
	return d
}

func (d *Driver) Run(ctx context.Context) (message.Run, error) {
	return d.run, nil
}

func (d *Driver) CreateMessage(
	ctx context.Context,
	content []byte,
	dstNodeID int64,
	groupID string,
	ttl time.Duration,
) (*message.Message, error) {
	if ttl <= 0 {
		ttl = message.DefaultTTL
	}
	return &message.Message{
		Metadata: message.Metadata{
			RunID:     d.run.RunID,
			SrcNodeID: message.SrcNodeDriver,
			DstNodeID: dstNodeID,
			GroupID:   groupID,
			TTL:       ttl,
		},
		Content: content,
	}, nil
}

func (d *Driver) GetNodeIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, len(d.nodeIDs))
	copy(ids, d.nodeIDs)
	return ids, nil
}

func (d *Driver) checkMessage(i int, m *message.Message) error {
	switch {
	case m.Metadata.RunID != d.run.RunID:
		return &driver.ValidationError{Index: i, Reason: fmt.Sprintf("run id %d does not match bound run %d", m.Metadata.RunID, d.run.RunID)}
	case m.Metadata.SrcNodeID != message.SrcNodeDriver:
		return &driver.ValidationError{Index: i, Reason: "src node id must be the driver node"}
	case m.Metadata.MessageID != "":
		return &driver.ValidationError{Index: i, Reason: "message id must be empty before push"}
	case m.Metadata.ReplyToMessageID != "":
		return &driver.ValidationError{Index: i, Reason: "outgoing message must not be a reply"}
	case m.Metadata.TTL <= 0:
		return &driver.ValidationError{Index: i, Reason: "ttl must be positive"}
	}
	return nil
}

func (d *Driver) PushMessages(ctx context.Context, msgs []*message.Message) ([]string, error) {
	for i, m := range msgs {
		if err := d.checkMessage(i, m); err != nil {
			return nil, err
		}
	}

	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		instruction := *m
		instruction.Metadata.MessageID = uuid.New().String()
		ids = append(ids, instruction.Metadata.MessageID)
		d.pool.Submit(func() {
			d.executeNode(ctx, &instruction)
		})
	}
	return ids, nil
}

// executeNode plays the worker side of one exchange: resolve the app,
// run it once, record the reply. App failures become error replies the
// same way a real supernode session reports them.
func (d *Driver) executeNode(ctx context.Context, instruction *message.Message) {
	var reply *message.Message
	app, err := d.registry.Resolve(d.run.AppID, d.run.AppVersion)
	if err != nil {
		reply = instruction.CreateErrorReply(&message.Error{Code: 1, Reason: err.Error()})
	} else if reply, err = app(ctx, d.run, instruction); err != nil {
		d.logger.Error("Client app failed",
			"node_id", instruction.Metadata.DstNodeID,
			"error", err,
		)
		reply = instruction.CreateErrorReply(&message.Error{Code: 1, Reason: err.Error()})
	}
	if reply == nil {
		reply = instruction.CreateErrorReply(&message.Error{Code: 1, Reason: "app returned no reply"})
	}
	reply.Metadata.MessageID = uuid.New().String()

	d.mu.Lock()
	d.replies[reply.Metadata.ReplyToMessageID] = reply
	d.mu.Unlock()
}

func (d *Driver) PullMessages(ctx context.Context, ids []string) ([]*message.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	msgs := make([]*message.Message, 0, len(ids))
	for _, id := range ids {
		if reply, ok := d.replies[id]; ok {
			msgs = append(msgs, reply)
			delete(d.replies, id)
		}
	}
	return msgs, nil
}

func (d *Driver) SendAndReceive(
	ctx context.Context,
	msgs []*message.Message,
	timeout time.Duration,
) ([]*message.Message, error) {
	ids, err := d.PushMessages(ctx, msgs)
	if err != nil {
		return nil, err
	}

	outstanding := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		outstanding[id] = struct{}{}
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	var replies []*message.Message
	for len(outstanding) > 0 {
		pending := make([]string, 0, len(outstanding))
		for id := range outstanding {
			pending = append(pending, id)
		}
		pulled, err := d.PullMessages(ctx, pending)
		if err != nil {
			return replies, err
		}
		for _, m := range pulled {
			replies = append(replies, m)
			delete(outstanding, m.Metadata.ReplyToMessageID)
		}
		if len(outstanding) == 0 {
			break
		}

		interval := d.pollInterval
		if timeout > 0 {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				break
			}
			if remaining < interval {
				interval = remaining
			}
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return replies, nil
		case <-timer.C:
		}
	}
	return replies, nil
}

// Close drains the pool, waiting for in-flight node executions.
func (d *Driver) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	d.pool.Close()
	return nil
}

var _ driver.Driver = (*Driver)(nil)
