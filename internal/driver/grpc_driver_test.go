package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/shared/proto"
	"github.com/fedlink/fedlink/pkg/retry"
)

const testRunID int64 = 61016

type fakeDriverClient struct {
	run       *proto.Run
	getRunErr error
	getRuns   int

	nodes        []*proto.Node
	lastGetNodes *proto.GetNodesRequest

	pushIDs  []string
	pushErrs []error
	pushes   int
	lastPush *proto.PushTaskInsRequest

	pullTasks []*proto.Task
	pulls     int
	lastPull  *proto.PullTaskResRequest
}

func (f *fakeDriverClient) CreateRun(ctx context.Context, in *proto.CreateRunRequest, opts ...grpc.CallOption) (*proto.CreateRunResponse, error) {
	return &proto.CreateRunResponse{RunId: testRunID}, nil
}

func (f *fakeDriverClient) GetRun(ctx context.Context, in *proto.GetRunRequest, opts ...grpc.CallOption) (*proto.GetRunResponse, error) {
	f.getRuns++
	if f.getRunErr != nil {
		return nil, f.getRunErr
	}
	return &proto.GetRunResponse{Run: f.run}, nil
}

func (f *fakeDriverClient) GetNodes(ctx context.Context, in *proto.GetNodesRequest, opts ...grpc.CallOption) (*proto.GetNodesResponse, error) {
	f.lastGetNodes = in
	return &proto.GetNodesResponse{Nodes: f.nodes}, nil
}

func (f *fakeDriverClient) PushTaskIns(ctx context.Context, in *proto.PushTaskInsRequest, opts ...grpc.CallOption) (*proto.PushTaskInsResponse, error) {
	f.pushes++
	f.lastPush = in
	if len(f.pushErrs) > 0 {
		err := f.pushErrs[0]
		f.pushErrs = f.pushErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &proto.PushTaskInsResponse{TaskIds: f.pushIDs}, nil
}

func (f *fakeDriverClient) PullTaskRes(ctx context.Context, in *proto.PullTaskResRequest, opts ...grpc.CallOption) (*proto.PullTaskResResponse, error) {
	f.pulls++
	f.lastPull = in
	return &proto.PullTaskResResponse{TaskResList: f.pullTasks}, nil
}

func newTestDriver(t *testing.T, client proto.DriverServiceClient) *GrpcDriver {
	t.Helper()
	noSleep := func(ctx context.Context, d time.Duration) error { return nil }
	return NewGrpcDriver(
		testRunID,
		"localhost:9091",
		WithClient(client),
		WithRetrier(retry.NewInvoker(retry.DefaultPolicy(), retry.WithSleep(noSleep))),
	)
}

func testRun() *proto.Run {
	return &proto.Run{RunId: testRunID, AppId: "mock/mock", AppVersion: "v1.0.0"}
}

func TestRun_FetchesOnceAndCaches(t *testing.T) {
	client := &fakeDriverClient{run: testRun()}
	d := newTestDriver(t, client)
	ctx := context.Background()

	run, err := d.Run(ctx)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if run.RunID != testRunID || run.AppID != "mock/mock" || run.AppVersion != "v1.0.0" {
		t.Errorf("Unexpected run metadata: %+v", run)
	}

	if _, err := d.Run(ctx); err != nil {
		t.Fatalf("Second Run returned error: %v", err)
	}
	if _, err := d.GetNodeIDs(ctx); err != nil {
		t.Fatalf("GetNodeIDs returned error: %v", err)
	}

	if client.getRuns != 1 {
		t.Errorf("Expected exactly 1 GetRun call, got %d", client.getRuns)
	}
}

func TestRun_NotFound(t *testing.T) {
	client := &fakeDriverClient{run: nil}
	d := newTestDriver(t, client)

	_, err := d.Run(context.Background())
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("Expected ErrRunNotFound, got %v", err)
	}
}

func TestRun_NotFoundStatus(t *testing.T) {
	client := &fakeDriverClient{getRunErr: status.Error(codes.NotFound, "unknown run")}
	d := newTestDriver(t, client)

	_, err := d.Run(context.Background())
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("Expected ErrRunNotFound, got %v", err)
	}
	if client.getRuns != 1 {
		t.Errorf("Semantic failure must not be retried, got %d calls", client.getRuns)
	}
}

func TestGetNodeIDs(t *testing.T) {
	client := &fakeDriverClient{
		run:   testRun(),
		nodes: []*proto.Node{{NodeId: 404}, {NodeId: 200}},
	}
	d := newTestDriver(t, client)

	nodeIDs, err := d.GetNodeIDs(context.Background())
	if err != nil {
		t.Fatalf("GetNodeIDs returned error: %v", err)
	}
	if len(nodeIDs) != 2 || nodeIDs[0] != 404 || nodeIDs[1] != 200 {
		t.Errorf("Expected [404 200], got %v", nodeIDs)
	}
	if client.lastGetNodes.GetRunId() != testRunID {
		t.Errorf("Expected GetNodes scoped to run %d, got %d", testRunID, client.lastGetNodes.GetRunId())
	}
}

func TestPushMessages_Valid(t *testing.T) {
	client := &fakeDriverClient{run: testRun(), pushIDs: []string{"id1", "id2"}}
	d := newTestDriver(t, client)
	ctx := context.Background()

	var msgs []*message.Message
	for range 2 {
		m, err := d.CreateMessage(ctx, nil, 0, "", message.DefaultTTL)
		if err != nil {
			t.Fatalf("CreateMessage returned error: %v", err)
		}
		msgs = append(msgs, m)
	}

	ids, err := d.PushMessages(ctx, msgs)
	if err != nil {
		t.Fatalf("PushMessages returned error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "id1" || ids[1] != "id2" {
		t.Errorf("Expected ids [id1 id2] in input order, got %v", ids)
	}
	for _, taskIns := range client.lastPush.GetTaskInsList() {
		if taskIns.GetRunId() != testRunID {
			t.Errorf("Expected task run id %d, got %d", testRunID, taskIns.GetRunId())
		}
	}
}

func TestPushMessages_InvalidRunID(t *testing.T) {
	client := &fakeDriverClient{run: testRun(), pushIDs: []string{"id1", "id2"}}
	d := newTestDriver(t, client)
	ctx := context.Background()

	var msgs []*message.Message
	for range 2 {
		m, err := d.CreateMessage(ctx, nil, 0, "", message.DefaultTTL)
		if err != nil {
			t.Fatalf("CreateMessage returned error: %v", err)
		}
		msgs = append(msgs, m)
	}
	msgs[1].Metadata.RunID++

	_, err := d.PushMessages(ctx, msgs)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if validationErr.Index != 1 {
		t.Errorf("Expected failing index 1, got %d", validationErr.Index)
	}
	if client.pushes != 0 {
		t.Errorf("Validation failure must cause zero push calls, got %d", client.pushes)
	}
}

func TestPushMessages_TransientFailureRetried(t *testing.T) {
	client := &fakeDriverClient{
		run:     testRun(),
		pushIDs: []string{"id1"},
		pushErrs: []error{
			status.Error(codes.Unavailable, "connection refused"),
			status.Error(codes.Unavailable, "connection refused"),
		},
	}
	d := newTestDriver(t, client)
	ctx := context.Background()

	m, err := d.CreateMessage(ctx, nil, 0, "", message.DefaultTTL)
	if err != nil {
		t.Fatalf("CreateMessage returned error: %v", err)
	}

	ids, err := d.PushMessages(ctx, []*message.Message{m})
	if err != nil {
		t.Fatalf("PushMessages returned error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "id1" {
		t.Errorf("Expected [id1], got %v", ids)
	}
	if client.pushes != 3 {
		t.Errorf("Expected 3 push attempts, got %d", client.pushes)
	}
}

func TestPullMessages_Correlation(t *testing.T) {
	client := &fakeDriverClient{
		run: testRun(),
		pullTasks: []*proto.Task{
			{
				RunId:         testRunID,
				ReplyToTaskId: "id2",
				Payload:       &proto.Task_Content{Content: []byte{}},
			},
			{
				RunId:         testRunID,
				ReplyToTaskId: "id3",
				Payload:       &proto.Task_Error{Error: &proto.Error{Code: 0}},
			},
		},
	}
	d := newTestDriver(t, client)

	msgs, err := d.PullMessages(context.Background(), []string{"id1", "id2", "id3"})
	if err != nil {
		t.Fatalf("PullMessages returned error: %v", err)
	}

	replyTos := map[string]bool{}
	for _, m := range msgs {
		replyTos[m.Metadata.ReplyToMessageID] = true
	}
	if len(replyTos) != 2 || !replyTos["id2"] || !replyTos["id3"] {
		t.Errorf("Expected reply correlation set {id2 id3}, got %v", replyTos)
	}
	if got := client.lastPull.GetTaskIds(); len(got) != 3 {
		t.Errorf("Expected pull request for 3 ids, got %v", got)
	}
}

func TestPullMessages_MalformedReply(t *testing.T) {
	client := &fakeDriverClient{
		run: testRun(),
		pullTasks: []*proto.Task{
			{RunId: testRunID, ReplyToTaskId: "id1"}, // neither content nor error
		},
	}
	d := newTestDriver(t, client)

	_, err := d.PullMessages(context.Background(), []string{"id1"})
	var decodeErr *message.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected DecodeError for reply without payload, got %v", err)
	}
}

func TestSendAndReceive_Complete(t *testing.T) {
	client := &fakeDriverClient{
		run:     testRun(),
		pushIDs: []string{"id1"},
		pullTasks: []*proto.Task{
			{
				RunId:         testRunID,
				ReplyToTaskId: "id1",
				Payload:       &proto.Task_Error{Error: &proto.Error{Code: 0}},
			},
		},
	}
	d := newTestDriver(t, client)
	ctx := context.Background()

	m, err := d.CreateMessage(ctx, nil, 0, "", message.DefaultTTL)
	if err != nil {
		t.Fatalf("CreateMessage returned error: %v", err)
	}

	start := time.Now()
	replies, err := d.SendAndReceive(ctx, []*message.Message{m}, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("SendAndReceive returned error: %v", err)
	}

	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Expected immediate return with all replies ready, took %v", elapsed)
	}
	if len(replies) != 1 {
		t.Fatalf("Expected 1 reply, got %d", len(replies))
	}
	if replies[0].Metadata.ReplyToMessageID != "id1" {
		t.Errorf("Expected reply correlated to id1, got %q", replies[0].Metadata.ReplyToMessageID)
	}
}

func TestSendAndReceive_Timeout(t *testing.T) {
	client := &fakeDriverClient{run: testRun(), pushIDs: []string{"id1"}}
	noSleep := func(ctx context.Context, d time.Duration) error { return nil }
	// Scale the inter-poll sleep down so the 150ms deadline is hit by
	// wall clock without real 100ms pauses.
	scaledSleep := func(ctx context.Context, d time.Duration) error {
		time.Sleep(d / 100)
		return nil
	}
	d := NewGrpcDriver(
		testRunID,
		"localhost:9091",
		WithClient(client),
		WithRetrier(retry.NewInvoker(retry.DefaultPolicy(), retry.WithSleep(noSleep))),
		WithClock(time.Now, scaledSleep),
	)
	ctx := context.Background()

	m, err := d.CreateMessage(ctx, nil, 0, "", message.DefaultTTL)
	if err != nil {
		t.Fatalf("CreateMessage returned error: %v", err)
	}

	start := time.Now()
	replies, err := d.SendAndReceive(ctx, []*message.Message{m}, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("SendAndReceive returned error: %v", err)
	}

	if elapsed := time.Since(start); elapsed >= 200*time.Millisecond {
		t.Errorf("Timeout not honored, took %v", elapsed)
	}
	if len(replies) != 0 {
		t.Errorf("Expected empty result at timeout, got %d replies", len(replies))
	}
	if client.pulls == 0 {
		t.Error("Expected at least one pull before timing out")
	}
}

func TestSendAndReceive_PartialResult(t *testing.T) {
	client := &fakeDriverClient{
		run:     testRun(),
		pushIDs: []string{"id1", "id2"},
		pullTasks: []*proto.Task{
			{
				RunId:         testRunID,
				ReplyToTaskId: "id2",
				Payload:       &proto.Task_Content{Content: []byte("partial")},
			},
		},
	}
	noSleep := func(ctx context.Context, d time.Duration) error { return nil }
	fakeNow := time.Now()
	// Each clock read advances 60ms, expiring a 150ms deadline after a
	// few polls without any real waiting.
	now := func() time.Time {
		fakeNow = fakeNow.Add(60 * time.Millisecond)
		return fakeNow
	}
	d := NewGrpcDriver(
		testRunID,
		"localhost:9091",
		WithClient(client),
		WithRetrier(retry.NewInvoker(retry.DefaultPolicy(), retry.WithSleep(noSleep))),
		WithClock(now, noSleep),
	)
	ctx := context.Background()

	var msgs []*message.Message
	for range 2 {
		m, err := d.CreateMessage(ctx, nil, 0, "", message.DefaultTTL)
		if err != nil {
			t.Fatalf("CreateMessage returned error: %v", err)
		}
		msgs = append(msgs, m)
	}

	replies, err := d.SendAndReceive(ctx, msgs, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("SendAndReceive returned error: %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("Expected partial result with 1 reply, got %d", len(replies))
	}
	if replies[0].Metadata.ReplyToMessageID != "id2" {
		t.Errorf("Expected the available reply id2, got %q", replies[0].Metadata.ReplyToMessageID)
	}
}

func TestClose_NeverConnected(t *testing.T) {
	d := NewGrpcDriver(testRunID, "localhost:9091")

	if err := d.Close(); err != nil {
		t.Fatalf("Close on never-connected driver returned error: %v", err)
	}
}

func TestClose_ClosesOnce(t *testing.T) {
	d := NewGrpcDriver(testRunID, "localhost:0")

	// grpc.NewClient is lazy, so connecting here performs no I/O.
	if err := d.connect(); err != nil {
		t.Fatalf("connect returned error: %v", err)
	}
	if d.conn == nil {
		t.Fatal("Expected a live connection after connect")
	}

	if err := d.Close(); err != nil {
		t.Fatalf("First Close returned error: %v", err)
	}
	if d.conn != nil {
		t.Error("Expected connection to be released after Close")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Second Close must be a no-op, got error: %v", err)
	}
}
