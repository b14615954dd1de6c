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

// DriverService serves the driver-facing dispatch RPCs on top of the
// link state.
type DriverService struct {
	proto.UnimplementedDriverServiceServer

	state  state.LinkState
	logger logging.Logger
}

func NewDriverService(linkState state.LinkState, logger logging.Logger) *DriverService {
	return &DriverService{
		state:  linkState,
		logger: logger,
	}
}

func (s *DriverService) CreateRun(
	ctx context.Context,
	req *proto.CreateRunRequest,
) (*proto.CreateRunResponse, error) {
	if req.GetAppId() == "" {
		return nil, status.Error(codes.InvalidArgument, "app_id is required")
	}

	runID, err := s.state.CreateRun(req.GetAppId(), req.GetAppVersion())
	if err != nil {
		s.logger.Error("Failed to create run", "app_id", req.GetAppId(), "error", err)
		return nil, status.Error(codes.Internal, "failed to create run")
	}

	s.logger.Info("Run registered",
		"run_id", runID,
		"app_id", req.GetAppId(),
		"app_version", req.GetAppVersion(),
	)
	return &proto.CreateRunResponse{RunId: runID}, nil
}

func (s *DriverService) GetRun(
	ctx context.Context,
	req *proto.GetRunRequest,
) (*proto.GetRunResponse, error) {
	run, err := s.state.GetRun(req.GetRunId())
	if err != nil {
		if errors.Is(err, state.ErrRunNotFound) {
			return nil, status.Errorf(codes.NotFound, "run %d not found", req.GetRunId())
		}
		return nil, status.Error(codes.Internal, "failed to fetch run")
	}
	return &proto.GetRunResponse{Run: message.RunToProto(run)}, nil
}

func (s *DriverService) GetNodes(
	ctx context.Context,
	req *proto.GetNodesRequest,
) (*proto.GetNodesResponse, error) {
	nodeIDs, err := s.state.GetNodeIDs(req.GetRunId())
	if err != nil {
		if errors.Is(err, state.ErrRunNotFound) {
			return nil, status.Errorf(codes.NotFound, "run %d not found", req.GetRunId())
		}
		return nil, status.Error(codes.Internal, "failed to list nodes")
	}

	nodes := make([]*proto.Node, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		nodes = append(nodes, &proto.Node{NodeId: id})
	}
	return &proto.GetNodesResponse{Nodes: nodes}, nil
}

func (s *DriverService) PushTaskIns(
	ctx context.Context,
	req *proto.PushTaskInsRequest,
) (*proto.PushTaskInsResponse, error) {
	for _, task := range req.GetTaskInsList() {
		if task.GetTaskId() != "" {
			return nil, status.Error(codes.InvalidArgument, "task id must be unset; it is assigned on push")
		}
	}

	ids, err := s.state.StoreTaskIns(req.GetTaskInsList())
	if err != nil {
		if errors.Is(err, state.ErrRunNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		s.logger.Error("Failed to store task instructions", "error", err)
		return nil, status.Error(codes.Internal, "failed to store task instructions")
	}

	s.logger.Debug("Task instructions stored", "count", len(ids))
	return &proto.PushTaskInsResponse{TaskIds: ids}, nil
}

func (s *DriverService) PullTaskRes(
	ctx context.Context,
	req *proto.PullTaskResRequest,
) (*proto.PullTaskResResponse, error) {
	results, err := s.state.PullTaskRes(req.GetTaskIds())
	if err != nil {
		s.logger.Error("Failed to pull task results", "error", err)
		return nil, status.Error(codes.Internal, "failed to pull task results")
	}
	return &proto.PullTaskResResponse{TaskResList: results}, nil
}
