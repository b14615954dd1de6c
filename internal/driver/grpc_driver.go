package driver

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/shared/proto"
	"github.com/fedlink/fedlink/pkg/retry"
)

const defaultPollInterval = 100 * time.Millisecond

// GrpcDriver talks to the superlink Driver API. The connection is
// established lazily on first use. The bound run's metadata is fetched
// once and cached; there is no refresh path.
type GrpcDriver struct {
	runID int64
	addr  string

	retrier      *retry.Invoker
	pollInterval time.Duration
	now          func() time.Time
	sleep        retry.SleepFunc
	logger       logging.Logger

	conn   *grpc.ClientConn
	client proto.DriverServiceClient
	run    *message.Run
}

// GrpcDriverOption customizes a GrpcDriver.
type GrpcDriverOption func(*GrpcDriver)

// WithRetrier replaces the retry invoker applied to every remote call.
func WithRetrier(inv *retry.Invoker) GrpcDriverOption {
	return func(d *GrpcDriver) { d.retrier = inv }
}

// WithClient injects a pre-built service client, skipping the lazy
// dial. Tests use this with a fake client.
func WithClient(c proto.DriverServiceClient) GrpcDriverOption {
	return func(d *GrpcDriver) { d.client = c }
}

// WithPollInterval sets the sleep between SendAndReceive polls.
func WithPollInterval(interval time.Duration) GrpcDriverOption {
	return func(d *GrpcDriver) { d.pollInterval = interval }
}

// WithClock replaces the wall clock and the inter-poll sleep so tests
// can simulate elapsed time without real delays.
func WithClock(now func() time.Time, sleep retry.SleepFunc) GrpcDriverOption {
	return func(d *GrpcDriver) {
		d.now = now
		d.sleep = sleep
	}
}

// WithLogger sets the driver's logger.
func WithLogger(logger logging.Logger) GrpcDriverOption {
	return func(d *GrpcDriver) { d.logger = logger }
}

func NewGrpcDriver(runID int64, superlinkAddr string, opts ...GrpcDriverOption) *GrpcDriver {
	d := &GrpcDriver{
		runID:        runID,
		addr:         superlinkAddr,
		retrier:      retry.NewInvoker(retry.DefaultPolicy()),
		pollInterval: defaultPollInterval,
		now:          time.Now,
		sleep: func(ctx context.Context, dur time.Duration) error {
			timer := time.NewTimer(dur)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
				return nil
			}
		},
		logger: logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *GrpcDriver) connect() error {
	if d.client != nil {
		return nil
	}
	conn, err := grpc.NewClient(
		d.addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to superlink: %w", err)
	}
	d.conn = conn
	d.client = proto.NewDriverServiceClient(conn)
	d.logger.Debug("Connected to superlink", "addr", d.addr)
	return nil
}

func (d *GrpcDriver) stub() (proto.DriverServiceClient, error) {
	if err := d.connect(); err != nil {
		return nil, err
	}
	return d.client, nil
}

func (d *GrpcDriver) initRun(ctx context.Context) error {
	if d.run != nil {
		return nil
	}
	stub, err := d.stub()
	if err != nil {
		return err
	}
	res, err := retry.Do(ctx, d.retrier, func() (*proto.GetRunResponse, error) {
		return stub.GetRun(ctx, &proto.GetRunRequest{RunId: d.runID})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("run %d: %w", d.runID, ErrRunNotFound)
		}
		return fmt.Errorf("failed to fetch run %d: %w", d.runID, err)
	}
	if res.GetRun() == nil {
		return fmt.Errorf("run %d: %w", d.runID, ErrRunNotFound)
	}
	run := message.RunFromProto(res.GetRun())
	d.run = &run
	return nil
}

func (d *GrpcDriver) Run(ctx context.Context) (message.Run, error) {
	if err := d.initRun(ctx); err != nil {
		return message.Run{}, err
	}
	return *d.run, nil
}

func (d *GrpcDriver) CreateMessage(
	ctx context.Context,
	content []byte,
	dstNodeID int64,
	groupID string,
	ttl time.Duration,
) (*message.Message, error) {
	if err := d.initRun(ctx); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = message.DefaultTTL
	}
	return &message.Message{
		Metadata: message.Metadata{
			RunID:     d.runID,
			SrcNodeID: message.SrcNodeDriver,
			DstNodeID: dstNodeID,
			GroupID:   groupID,
			TTL:       ttl,
		},
		Content: content,
	}, nil
}

func (d *GrpcDriver) GetNodeIDs(ctx context.Context) ([]int64, error) {
	if err := d.initRun(ctx); err != nil {
		return nil, err
	}
	stub, err := d.stub()
	if err != nil {
		return nil, err
	}
	res, err := retry.Do(ctx, d.retrier, func() (*proto.GetNodesResponse, error) {
		return stub.GetNodes(ctx, &proto.GetNodesRequest{RunId: d.runID})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	nodeIDs := make([]int64, 0, len(res.GetNodes()))
	for _, node := range res.GetNodes() {
		nodeIDs = append(nodeIDs, node.GetNodeId())
	}
	return nodeIDs, nil
}

// checkMessage rejects messages that do not belong to the bound run or
// that were already pushed or are replies.
func (d *GrpcDriver) checkMessage(i int, m *message.Message) error {
	switch {
	case m.Metadata.RunID != d.runID:
		return &ValidationError{Index: i, Reason: fmt.Sprintf("run id %d does not match bound run %d", m.Metadata.RunID, d.runID)}
	case m.Metadata.SrcNodeID != message.SrcNodeDriver:
		return &ValidationError{Index: i, Reason: "src node id must be the driver node"}
	case m.Metadata.MessageID != "":
		return &ValidationError{Index: i, Reason: "message id must be empty before push"}
	case m.Metadata.ReplyToMessageID != "":
		return &ValidationError{Index: i, Reason: "outgoing message must not be a reply"}
	case m.Metadata.TTL <= 0:
		return &ValidationError{Index: i, Reason: "ttl must be positive"}
	}
	return nil
}

func (d *GrpcDriver) PushMessages(ctx context.Context, msgs []*message.Message) ([]string, error) {
	if err := d.initRun(ctx); err != nil {
		return nil, err
	}

	// Validate the whole batch before touching the wire: a validation
	// fault must cause zero remote calls and no partial push.
	taskInsList := make([]*proto.Task, 0, len(msgs))
	for i, m := range msgs {
		if err := d.checkMessage(i, m); err != nil {
			return nil, err
		}
		taskInsList = append(taskInsList, message.ToTaskIns(m))
	}

	stub, err := d.stub()
	if err != nil {
		return nil, err
	}
	res, err := retry.Do(ctx, d.retrier, func() (*proto.PushTaskInsResponse, error) {
		return stub.PushTaskIns(ctx, &proto.PushTaskInsRequest{TaskInsList: taskInsList})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to push messages: %w", err)
	}
	return res.GetTaskIds(), nil
}

func (d *GrpcDriver) PullMessages(ctx context.Context, ids []string) ([]*message.Message, error) {
	if err := d.initRun(ctx); err != nil {
		return nil, err
	}
	stub, err := d.stub()
	if err != nil {
		return nil, err
	}
	res, err := retry.Do(ctx, d.retrier, func() (*proto.PullTaskResResponse, error) {
		return stub.PullTaskRes(ctx, &proto.PullTaskResRequest{
			Node:    &proto.Node{NodeId: message.SrcNodeDriver},
			TaskIds: ids,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pull messages: %w", err)
	}

	requested := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	msgs := make([]*message.Message, 0, len(res.GetTaskResList()))
	for _, taskRes := range res.GetTaskResList() {
		m, err := message.FromTaskRes(taskRes)
		if err != nil {
			return nil, err
		}
		if _, ok := requested[m.Metadata.ReplyToMessageID]; !ok {
			d.logger.Warn("Dropping reply with unrequested correlation id",
				"reply_to", m.Metadata.ReplyToMessageID,
			)
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (d *GrpcDriver) SendAndReceive(
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
		deadline = d.now().Add(timeout)
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
			remaining := deadline.Sub(d.now())
			if remaining <= 0 {
				break
			}
			if remaining < interval {
				interval = remaining
			}
		}
		if err := d.sleep(ctx, interval); err != nil {
			// Context canceled while waiting; hand back what arrived.
			return replies, nil
		}
	}
	return replies, nil
}

// Close disconnects from the superlink. It performs no transport
// teardown when the connection was never established and closes at
// most once otherwise.
func (d *GrpcDriver) Close() error {
	if d.conn == nil {
		return nil
	}
	conn := d.conn
	d.conn = nil
	d.client = nil
	d.logger.Debug("Disconnected from superlink")
	return conn.Close()
}

var _ Driver = (*GrpcDriver)(nil)
