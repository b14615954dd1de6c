package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/proto"
	"github.com/fedlink/fedlink/internal/superlink/state"
)

func newServices() (*DriverService, *ClientAppIoService) {
	linkState := state.NewInMemoryState()
	logger := logging.NopLogger{}
	return NewDriverService(linkState, logger), NewClientAppIoService(linkState, logger)
}

func TestGetRun_UnknownRunReturnsNotFound(t *testing.T) {
	driverSvc, _ := newServices()

	_, err := driverSvc.GetRun(context.Background(), &proto.GetRunRequest{RunId: 61016})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("Expected NotFound, got %v", err)
	}
}

func TestCreateRun_RequiresAppID(t *testing.T) {
	driverSvc, _ := newServices()

	_, err := driverSvc.CreateRun(context.Background(), &proto.CreateRunRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("Expected InvalidArgument, got %v", err)
	}
}

func TestPushTaskIns_RejectsPreassignedIDs(t *testing.T) {
	driverSvc, _ := newServices()
	ctx := context.Background()

	created, err := driverSvc.CreateRun(ctx, &proto.CreateRunRequest{AppId: "demo/app", AppVersion: "v1"})
	if err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}

	_, err = driverSvc.PushTaskIns(ctx, &proto.PushTaskInsRequest{
		TaskInsList: []*proto.Task{{
			TaskId:  "preassigned",
			RunId:   created.GetRunId(),
			Payload: &proto.Task_Content{Content: nil},
		}},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("Expected InvalidArgument, got %v", err)
	}
}

func TestDispatchRoundTrip(t *testing.T) {
	driverSvc, appIoSvc := newServices()
	ctx := context.Background()

	created, err := driverSvc.CreateRun(ctx, &proto.CreateRunRequest{AppId: "demo/app", AppVersion: "v1"})
	if err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}
	runID := created.GetRunId()

	registered, err := appIoSvc.RegisterNode(ctx, &proto.RegisterNodeRequest{RunId: runID})
	if err != nil {
		t.Fatalf("RegisterNode returned error: %v", err)
	}
	nodeID := registered.GetNode().GetNodeId()

	nodes, err := driverSvc.GetNodes(ctx, &proto.GetNodesRequest{RunId: runID})
	if err != nil {
		t.Fatalf("GetNodes returned error: %v", err)
	}
	if len(nodes.GetNodes()) != 1 || nodes.GetNodes()[0].GetNodeId() != nodeID {
		t.Fatalf("Expected the registered node, got %v", nodes.GetNodes())
	}

	pushed, err := driverSvc.PushTaskIns(ctx, &proto.PushTaskInsRequest{
		TaskInsList: []*proto.Task{{
			RunId:     runID,
			DstNodeId: nodeID,
			Payload:   &proto.Task_Content{Content: []byte("work")},
		}},
	})
	if err != nil {
		t.Fatalf("PushTaskIns returned error: %v", err)
	}
	if len(pushed.GetTaskIds()) != 1 {
		t.Fatalf("Expected 1 assigned id, got %v", pushed.GetTaskIds())
	}
	taskID := pushed.GetTaskIds()[0]

	inputs, err := appIoSvc.PullClientAppInputs(ctx, &proto.PullClientAppInputsRequest{
		Token: registered.GetToken(),
	})
	if err != nil {
		t.Fatalf("PullClientAppInputs returned error: %v", err)
	}
	if inputs.GetRun().GetRunId() != runID {
		t.Errorf("Expected run %d in inputs, got %d", runID, inputs.GetRun().GetRunId())
	}
	if inputs.GetTask().GetTaskId() != taskID {
		t.Errorf("Expected task %q, got %q", taskID, inputs.GetTask().GetTaskId())
	}

	_, err = appIoSvc.PushClientAppOutputs(ctx, &proto.PushClientAppOutputsRequest{
		Token: registered.GetToken(),
		Task: &proto.Task{
			RunId:         runID,
			SrcNodeId:     nodeID,
			ReplyToTaskId: taskID,
			Payload:       &proto.Task_Content{Content: []byte("done")},
		},
	})
	if err != nil {
		t.Fatalf("PushClientAppOutputs returned error: %v", err)
	}

	results, err := driverSvc.PullTaskRes(ctx, &proto.PullTaskResRequest{
		Node:    &proto.Node{NodeId: 0},
		TaskIds: []string{taskID},
	})
	if err != nil {
		t.Fatalf("PullTaskRes returned error: %v", err)
	}
	if len(results.GetTaskResList()) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results.GetTaskResList()))
	}
	if got := results.GetTaskResList()[0].GetReplyToTaskId(); got != taskID {
		t.Errorf("Expected reply correlated to %q, got %q", taskID, got)
	}
}

func TestPullClientAppInputs_TokenErrors(t *testing.T) {
	driverSvc, appIoSvc := newServices()
	ctx := context.Background()

	_, err := appIoSvc.PullClientAppInputs(ctx, &proto.PullClientAppInputsRequest{Token: 99})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("Expected PermissionDenied for unknown token, got %v", err)
	}

	created, _ := driverSvc.CreateRun(ctx, &proto.CreateRunRequest{AppId: "demo/app", AppVersion: "v1"})
	registered, _ := appIoSvc.RegisterNode(ctx, &proto.RegisterNodeRequest{RunId: created.GetRunId()})

	_, err = appIoSvc.PullClientAppInputs(ctx, &proto.PullClientAppInputsRequest{
		Token: registered.GetToken(),
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("Expected NotFound when nothing is pending, got %v", err)
	}
}

func TestPushClientAppOutputs_RequiresPayload(t *testing.T) {
	driverSvc, appIoSvc := newServices()
	ctx := context.Background()

	created, _ := driverSvc.CreateRun(ctx, &proto.CreateRunRequest{AppId: "demo/app", AppVersion: "v1"})
	registered, _ := appIoSvc.RegisterNode(ctx, &proto.RegisterNodeRequest{RunId: created.GetRunId()})

	_, err := appIoSvc.PushClientAppOutputs(ctx, &proto.PushClientAppOutputsRequest{
		Token: registered.GetToken(),
		Task:  &proto.Task{ReplyToTaskId: "id1"},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("Expected InvalidArgument for reply without payload, got %v", err)
	}
}
