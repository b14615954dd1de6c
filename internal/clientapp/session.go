package clientapp

import (
	"context"
	"fmt"

	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/message"
)

// appErrorCode is carried in error replies produced by the session
// itself (app missing or app failure) rather than by application code.
const appErrorCode int64 = 1

// IoClient is the worker-facing transport used by a Session.
type IoClient interface {
	PullClientAppInputs(ctx context.Context, token uint64) (message.Run, *message.Message, error)
	PushClientAppOutputs(ctx context.Context, token uint64, msg *message.Message) error
	Close() error
}

// Session performs one token-scoped exchange: pull exactly one task,
// execute the client app exactly once, push exactly one reply. There
// is no retry at this layer; a failed invocation is restarted by the
// surrounding process supervisor.
type Session struct {
	token    uint64
	client   IoClient
	registry *Registry
	logger   logging.Logger
}

func NewSession(client IoClient, token uint64, registry *Registry, logger logging.Logger) *Session {
	return &Session{
		token:    token,
		client:   client,
		registry: registry,
		logger:   logger,
	}
}

// Run executes the exchange. A canceled context terminates gracefully
// without a reply and without error; a transport failure is logged and
// returned.
func (s *Session) Run(ctx context.Context) error {
	defer func() {
		if err := s.client.Close(); err != nil {
			s.logger.Error("Failed to close superlink connection", "error", err)
		}
	}()

	run, msg, err := s.client.PullClientAppInputs(ctx, s.token)
	if err != nil {
		if ctx.Err() != nil {
			s.logger.Info("Interrupted, closing connection")
			return nil
		}
		s.logger.Error("Failed to pull client app inputs", "error", err)
		return fmt.Errorf("failed to pull client app inputs: %w", err)
	}

	s.logger.Info("Executing client app",
		"app_id", run.AppID,
		"app_version", run.AppVersion,
		"message_id", msg.Metadata.MessageID,
	)

	reply := s.execute(ctx, run, msg)

	if err := s.client.PushClientAppOutputs(ctx, s.token, reply); err != nil {
		if ctx.Err() != nil {
			s.logger.Info("Interrupted, closing connection")
			return nil
		}
		s.logger.Error("Failed to push client app outputs", "error", err)
		return fmt.Errorf("failed to push client app outputs: %w", err)
	}

	s.logger.Info("Reply pushed", "reply_to", reply.Metadata.ReplyToMessageID)
	return nil
}

// execute runs the client app once. Failures become error replies; the
// exchange still completes with exactly one push.
func (s *Session) execute(ctx context.Context, run message.Run, msg *message.Message) *message.Message {
	app, err := s.registry.Resolve(run.AppID, run.AppVersion)
	if err != nil {
		s.logger.Error("Client app not installed", "app_id", run.AppID, "app_version", run.AppVersion)
		return msg.CreateErrorReply(&message.Error{Code: appErrorCode, Reason: err.Error()})
	}

	reply, err := app(ctx, run, msg)
	if err != nil {
		s.logger.Error("Client app failed", "app_id", run.AppID, "error", err)
		return msg.CreateErrorReply(&message.Error{Code: appErrorCode, Reason: err.Error()})
	}
	return reply
}
