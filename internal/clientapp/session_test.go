package clientapp

import (
	"context"
	"errors"
	"testing"

	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/message"
)

const testToken uint64 = 7741

type fakeIoClient struct {
	run message.Run
	msg *message.Message

	pullErr error
	pushErr error

	pulls  int
	pushes int
	closed int

	pushedToken uint64
	pushedMsg   *message.Message
}

func (f *fakeIoClient) PullClientAppInputs(ctx context.Context, token uint64) (message.Run, *message.Message, error) {
	f.pulls++
	if err := ctx.Err(); err != nil {
		return message.Run{}, nil, err
	}
	if f.pullErr != nil {
		return message.Run{}, nil, f.pullErr
	}
	return f.run, f.msg, nil
}

func (f *fakeIoClient) PushClientAppOutputs(ctx context.Context, token uint64, msg *message.Message) error {
	f.pushes++
	f.pushedToken = token
	f.pushedMsg = msg
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.pushErr
}

func (f *fakeIoClient) Close() error {
	f.closed++
	return nil
}

func newTestInputs() (message.Run, *message.Message) {
	run := message.Run{RunID: 61016, AppID: "demo/app", AppVersion: "v1.0.0"}
	msg := &message.Message{
		Metadata: message.Metadata{
			RunID:     run.RunID,
			MessageID: "msg-1",
			DstNodeID: 404,
			TTL:       message.DefaultTTL,
		},
		Content: []byte("instruction"),
	}
	return run, msg
}

func TestSession_SuccessfulExchange(t *testing.T) {
	run, msg := newTestInputs()
	client := &fakeIoClient{run: run, msg: msg}

	registry := NewRegistry()
	executions := 0
	registry.Register(run.AppID, run.AppVersion, func(ctx context.Context, run message.Run, msg *message.Message) (*message.Message, error) {
		executions++
		return msg.CreateReply([]byte("result")), nil
	})

	session := NewSession(client, testToken, registry, logging.NopLogger{})
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	if client.pulls != 1 || client.pushes != 1 || executions != 1 {
		t.Errorf("Expected exactly one pull, execute and push, got %d/%d/%d",
			client.pulls, executions, client.pushes)
	}
	if client.closed != 1 {
		t.Errorf("Expected connection closed once, got %d", client.closed)
	}
	if client.pushedToken != testToken {
		t.Errorf("Expected push scoped to token %d, got %d", testToken, client.pushedToken)
	}

	reply := client.pushedMsg
	if !reply.HasContent() || string(reply.Content) != "result" {
		t.Errorf("Unexpected reply payload: %+v", reply)
	}
	if reply.Metadata.ReplyToMessageID != msg.Metadata.MessageID {
		t.Errorf("Reply not correlated to instruction: %q", reply.Metadata.ReplyToMessageID)
	}
}

func TestSession_AppFailureBecomesErrorReply(t *testing.T) {
	run, msg := newTestInputs()
	client := &fakeIoClient{run: run, msg: msg}

	registry := NewRegistry()
	registry.Register(run.AppID, run.AppVersion, func(ctx context.Context, run message.Run, msg *message.Message) (*message.Message, error) {
		return nil, errors.New("train step diverged")
	})

	session := NewSession(client, testToken, registry, logging.NopLogger{})
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	reply := client.pushedMsg
	if reply == nil || !reply.HasError() {
		t.Fatalf("Expected an error reply, got %+v", reply)
	}
	if reply.Err.Reason != "train step diverged" {
		t.Errorf("Unexpected error reason: %q", reply.Err.Reason)
	}
}

func TestSession_UnknownAppBecomesErrorReply(t *testing.T) {
	run, msg := newTestInputs()
	client := &fakeIoClient{run: run, msg: msg}

	session := NewSession(client, testToken, NewRegistry(), logging.NopLogger{})
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	reply := client.pushedMsg
	if reply == nil || !reply.HasError() {
		t.Fatalf("Expected an error reply, got %+v", reply)
	}
	if reply.Err.Reason == "" {
		t.Errorf("Expected a reason in the error reply")
	}
}

func TestSession_PullTransportError(t *testing.T) {
	client := &fakeIoClient{pullErr: errors.New("connection refused")}

	session := NewSession(client, testToken, NewRegistry(), logging.NopLogger{})
	err := session.Run(context.Background())
	if err == nil {
		t.Fatal("Expected an error on pull failure")
	}
	if client.pushes != 0 {
		t.Errorf("Expected no push after pull failure, got %d", client.pushes)
	}
	if client.closed != 1 {
		t.Errorf("Expected connection closed, got %d", client.closed)
	}
}

func TestSession_CanceledContextIsGraceful(t *testing.T) {
	run, msg := newTestInputs()
	client := &fakeIoClient{run: run, msg: msg}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := NewSession(client, testToken, NewRegistry(), logging.NopLogger{})
	if err := session.Run(ctx); err != nil {
		t.Fatalf("Expected graceful shutdown, got %v", err)
	}
	if client.closed != 1 {
		t.Errorf("Expected connection closed, got %d", client.closed)
	}
}

func TestSession_PushTransportError(t *testing.T) {
	run, msg := newTestInputs()
	client := &fakeIoClient{run: run, msg: msg, pushErr: errors.New("connection reset")}

	registry := NewRegistry()
	registry.Register(run.AppID, run.AppVersion, func(ctx context.Context, run message.Run, msg *message.Message) (*message.Message, error) {
		return msg.CreateReply([]byte("result")), nil
	})

	session := NewSession(client, testToken, registry, logging.NopLogger{})
	if err := session.Run(context.Background()); err == nil {
		t.Fatal("Expected an error on push failure")
	}
	if client.closed != 1 {
		t.Errorf("Expected connection closed, got %d", client.closed)
	}
}
