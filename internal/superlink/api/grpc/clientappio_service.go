package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/shared/proto"
	"github.com/fedlink/fedlink/internal/superlink/state"
)

// ClientAppIoService serves the worker-facing RPCs. Each exchange is
// scoped by the single-use token issued at node registration.
type ClientAppIoService struct {
	proto.UnimplementedClientAppIoServiceServer

	state  state.LinkState
	logger logging.Logger
}

func NewClientAppIoService(linkState state.LinkState, logger logging.Logger) *ClientAppIoService {
	return &ClientAppIoService{
		state:  linkState,
		logger: logger,
	}
}

func (s *ClientAppIoService) RegisterNode(
	ctx context.Context,
	req *proto.RegisterNodeRequest,
) (*proto.RegisterNodeResponse, error) {
	nodeID, token, err := s.state.RegisterNode(req.GetRunId())
	if err != nil {
		if errors.Is(err, state.ErrRunNotFound) {
			return nil, status.Errorf(codes.NotFound, "run %d not found", req.GetRunId())
		}
		s.logger.Error("Failed to register node", "run_id", req.GetRunId(), "error", err)
		return nil, status.Error(codes.Internal, "failed to register node")
	}

	s.logger.Info("Node registered", "run_id", req.GetRunId(), "node_id", nodeID)
	return &proto.RegisterNodeResponse{
		Node:  &proto.Node{NodeId: nodeID},
		Token: token,
	}, nil
}

func (s *ClientAppIoService) PullClientAppInputs(
	ctx context.Context,
	req *proto.PullClientAppInputsRequest,
) (*proto.PullClientAppInputsResponse, error) {
	run, task, err := s.state.ConsumeTaskIns(req.GetToken())
	if err != nil {
		switch {
		case errors.Is(err, state.ErrInvalidToken):
			return nil, status.Error(codes.PermissionDenied, "invalid token")
		case errors.Is(err, state.ErrTokenConsumed):
			return nil, status.Error(codes.FailedPrecondition, "token already consumed")
		case errors.Is(err, state.ErrNoPendingTask):
			return nil, status.Error(codes.NotFound, "no pending task")
		}
		s.logger.Error("Failed to pull client app inputs", "error", err)
		return nil, status.Error(codes.Internal, "failed to pull client app inputs")
	}

	s.logger.Debug("Task handed to client app", "task_id", task.GetTaskId(), "run_id", run.RunID)
	return &proto.PullClientAppInputsResponse{
		Run:  message.RunToProto(run),
		Task: task,
	}, nil
}

func (s *ClientAppIoService) PushClientAppOutputs(
	ctx context.Context,
	req *proto.PushClientAppOutputsRequest,
) (*proto.PushClientAppOutputsResponse, error) {
	if req.GetTask() == nil {
		return nil, status.Error(codes.InvalidArgument, "task is required")
	}
	if req.GetTask().GetPayload() == nil {
		return nil, status.Error(codes.InvalidArgument, "reply must carry content or error")
	}

	if err := s.state.StoreTaskRes(req.GetToken(), req.GetTask()); err != nil {
		switch {
		case errors.Is(err, state.ErrInvalidToken):
			return nil, status.Error(codes.PermissionDenied, "invalid token")
		case errors.Is(err, state.ErrTokenConsumed):
			return nil, status.Error(codes.FailedPrecondition, "token already consumed")
		}
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Debug("Client app reply stored", "reply_to", req.GetTask().GetReplyToTaskId())
	return &proto.PushClientAppOutputsResponse{}, nil
}
