package state

import (
	"errors"
	"testing"

	"github.com/fedlink/fedlink/internal/shared/proto"
)

func TestCreateRun_RegisterOrGet(t *testing.T) {
	s := NewInMemoryState()

	runID, err := s.CreateRun("demo/app", "v1.0.0")
	if err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}

	again, err := s.CreateRun("demo/app", "v1.0.0")
	if err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}
	if again != runID {
		t.Errorf("Expected same run id for same app, got %d and %d", runID, again)
	}

	other, err := s.CreateRun("demo/app", "v2.0.0")
	if err != nil {
		t.Fatalf("CreateRun returned error: %v", err)
	}
	if other == runID {
		t.Error("Expected a fresh run id for a different app version")
	}

	run, err := s.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if run.AppID != "demo/app" || run.AppVersion != "v1.0.0" {
		t.Errorf("Unexpected run metadata: %+v", run)
	}
}

func TestGetRun_Unknown(t *testing.T) {
	s := NewInMemoryState()

	_, err := s.GetRun(61016)
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("Expected ErrRunNotFound, got %v", err)
	}
}

func TestRegisterNode_IssuesDistinctNodesAndTokens(t *testing.T) {
	s := NewInMemoryState()
	runID, _ := s.CreateRun("demo/app", "v1.0.0")

	node1, token1, err := s.RegisterNode(runID)
	if err != nil {
		t.Fatalf("RegisterNode returned error: %v", err)
	}
	node2, token2, err := s.RegisterNode(runID)
	if err != nil {
		t.Fatalf("RegisterNode returned error: %v", err)
	}
	if node1 == node2 {
		t.Error("Expected distinct node ids")
	}
	if token1 == token2 {
		t.Error("Expected distinct tokens")
	}

	nodeIDs, err := s.GetNodeIDs(runID)
	if err != nil {
		t.Fatalf("GetNodeIDs returned error: %v", err)
	}
	if len(nodeIDs) != 2 {
		t.Errorf("Expected 2 registered nodes, got %d", len(nodeIDs))
	}
}

func TestRegisterNode_UnknownRun(t *testing.T) {
	s := NewInMemoryState()

	_, _, err := s.RegisterNode(42)
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("Expected ErrRunNotFound, got %v", err)
	}
}

func TestTaskFlow_PushPullReply(t *testing.T) {
	s := NewInMemoryState()
	runID, _ := s.CreateRun("demo/app", "v1.0.0")
	nodeID, token, _ := s.RegisterNode(runID)

	ids, err := s.StoreTaskIns([]*proto.Task{
		{RunId: runID, DstNodeId: nodeID, Payload: &proto.Task_Content{Content: []byte("a")}},
		{RunId: runID, DstNodeId: nodeID, Payload: &proto.Task_Content{Content: []byte("b")}},
	})
	if err != nil {
		t.Fatalf("StoreTaskIns returned error: %v", err)
	}
	if len(ids) != 2 || ids[0] == "" || ids[0] == ids[1] {
		t.Fatalf("Expected 2 distinct assigned ids, got %v", ids)
	}

	run, task, err := s.ConsumeTaskIns(token)
	if err != nil {
		t.Fatalf("ConsumeTaskIns returned error: %v", err)
	}
	if run.RunID != runID {
		t.Errorf("Expected run %d, got %d", runID, run.RunID)
	}
	if task.GetTaskId() != ids[0] {
		t.Errorf("Expected oldest pending task %q first, got %q", ids[0], task.GetTaskId())
	}

	err = s.StoreTaskRes(token, &proto.Task{
		RunId:         runID,
		SrcNodeId:     nodeID,
		ReplyToTaskId: ids[0],
		Payload:       &proto.Task_Content{Content: []byte("reply")},
	})
	if err != nil {
		t.Fatalf("StoreTaskRes returned error: %v", err)
	}

	results, err := s.PullTaskRes(ids)
	if err != nil {
		t.Fatalf("PullTaskRes returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 reply, got %d", len(results))
	}
	if results[0].GetReplyToTaskId() != ids[0] {
		t.Errorf("Expected reply correlated to %q, got %q", ids[0], results[0].GetReplyToTaskId())
	}

	// Delivered replies are removed.
	results, _ = s.PullTaskRes(ids)
	if len(results) != 0 {
		t.Errorf("Expected reply to be delivered exactly once, got %d more", len(results))
	}
}

func TestConsumeTaskIns_TokenSingleUse(t *testing.T) {
	s := NewInMemoryState()
	runID, _ := s.CreateRun("demo/app", "v1.0.0")
	nodeID, token, _ := s.RegisterNode(runID)

	_, _ = s.StoreTaskIns([]*proto.Task{
		{RunId: runID, DstNodeId: nodeID, Payload: &proto.Task_Content{Content: []byte("a")}},
		{RunId: runID, DstNodeId: nodeID, Payload: &proto.Task_Content{Content: []byte("b")}},
	})

	if _, _, err := s.ConsumeTaskIns(token); err != nil {
		t.Fatalf("First pull returned error: %v", err)
	}
	if _, _, err := s.ConsumeTaskIns(token); !errors.Is(err, ErrTokenConsumed) {
		t.Fatalf("Expected ErrTokenConsumed on reuse, got %v", err)
	}
}

func TestConsumeTaskIns_InvalidToken(t *testing.T) {
	s := NewInMemoryState()

	_, _, err := s.ConsumeTaskIns(12345)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestConsumeTaskIns_NoPendingTask(t *testing.T) {
	s := NewInMemoryState()
	runID, _ := s.CreateRun("demo/app", "v1.0.0")
	_, token, _ := s.RegisterNode(runID)

	_, _, err := s.ConsumeTaskIns(token)
	if !errors.Is(err, ErrNoPendingTask) {
		t.Fatalf("Expected ErrNoPendingTask, got %v", err)
	}
}

func TestStoreTaskRes_CorrelationEnforced(t *testing.T) {
	s := NewInMemoryState()
	runID, _ := s.CreateRun("demo/app", "v1.0.0")
	nodeID, token, _ := s.RegisterNode(runID)

	ids, _ := s.StoreTaskIns([]*proto.Task{
		{RunId: runID, DstNodeId: nodeID, Payload: &proto.Task_Content{Content: []byte("a")}},
	})
	_, _, _ = s.ConsumeTaskIns(token)

	err := s.StoreTaskRes(token, &proto.Task{
		RunId:         runID,
		ReplyToTaskId: "some-other-id",
		Payload:       &proto.Task_Content{Content: nil},
	})
	if err == nil {
		t.Fatal("Expected error for reply correlated to a different task")
	}

	err = s.StoreTaskRes(token, &proto.Task{
		RunId:         runID,
		ReplyToTaskId: ids[0],
		Payload:       &proto.Task_Content{Content: nil},
	})
	if err != nil {
		t.Fatalf("StoreTaskRes returned error: %v", err)
	}

	// A second reply on the same token is rejected.
	err = s.StoreTaskRes(token, &proto.Task{
		RunId:         runID,
		ReplyToTaskId: ids[0],
		Payload:       &proto.Task_Content{Content: nil},
	})
	if !errors.Is(err, ErrTokenConsumed) {
		t.Fatalf("Expected ErrTokenConsumed on second reply, got %v", err)
	}
}

func TestStoreTaskIns_UnknownRun(t *testing.T) {
	s := NewInMemoryState()

	_, err := s.StoreTaskIns([]*proto.Task{
		{RunId: 999, DstNodeId: 1, Payload: &proto.Task_Content{Content: nil}},
	})
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("Expected ErrRunNotFound, got %v", err)
	}
}
