package state

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/shared/proto"
)

type exchange struct {
	runID    int64
	nodeID   int64
	taskID   string
	consumed bool
	replied  bool
}

// InMemoryState is the default LinkState backed by maps. All methods
// are safe for concurrent use.
type InMemoryState struct {
	mu       sync.RWMutex
	runs     map[int64]message.Run
	runByApp map[string]int64
	nodes    map[int64][]int64        // runID -> nodeIDs
	pending  map[int64][]*proto.Task  // nodeID -> FIFO instruction queue
	results  map[string]*proto.Task   // instruction taskID -> reply
	tokens   map[uint64]*exchange
}

func NewInMemoryState() *InMemoryState {
	return &InMemoryState{
		runs:     make(map[int64]message.Run),
		runByApp: make(map[string]int64),
		nodes:    make(map[int64][]int64),
		pending:  make(map[int64][]*proto.Task),
		results:  make(map[string]*proto.Task),
		tokens:   make(map[uint64]*exchange),
	}
}

func (s *InMemoryState) CreateRun(appID, appVersion string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := appID + "@" + appVersion
	if runID, exists := s.runByApp[key]; exists {
		return runID, nil
	}

	runID := rand.Int64()
	for _, exists := s.runs[runID]; exists; _, exists = s.runs[runID] {
		runID = rand.Int64()
	}
	s.runs[runID] = message.Run{RunID: runID, AppID: appID, AppVersion: appVersion}
	s.runByApp[key] = runID
	return runID, nil
}

func (s *InMemoryState) GetRun(runID int64) (message.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, exists := s.runs[runID]
	if !exists {
		return message.Run{}, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}
	return run, nil
}

func (s *InMemoryState) ListRuns() ([]message.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]message.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].RunID < runs[j].RunID })
	return runs, nil
}

func (s *InMemoryState) RegisterNode(runID int64) (int64, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[runID]; !exists {
		return 0, 0, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}

	nodeID := rand.Int64()
	token := rand.Uint64()
	for _, exists := s.tokens[token]; exists; _, exists = s.tokens[token] {
		token = rand.Uint64()
	}

	s.nodes[runID] = append(s.nodes[runID], nodeID)
	s.tokens[token] = &exchange{runID: runID, nodeID: nodeID}
	return nodeID, token, nil
}

func (s *InMemoryState) GetNodeIDs(runID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, exists := s.runs[runID]; !exists {
		return nil, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}
	nodeIDs := make([]int64, len(s.nodes[runID]))
	copy(nodeIDs, s.nodes[runID])
	return nodeIDs, nil
}

func (s *InMemoryState) StoreTaskIns(tasks []*proto.Task) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range tasks {
		if _, exists := s.runs[task.GetRunId()]; !exists {
			return nil, fmt.Errorf("run %d: %w", task.GetRunId(), ErrRunNotFound)
		}
	}

	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		task.TaskId = uuid.New().String()
		s.pending[task.GetDstNodeId()] = append(s.pending[task.GetDstNodeId()], task)
		ids = append(ids, task.GetTaskId())
	}
	return ids, nil
}

func (s *InMemoryState) ConsumeTaskIns(token uint64) (message.Run, *proto.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, exists := s.tokens[token]
	if !exists {
		return message.Run{}, nil, ErrInvalidToken
	}
	if ex.consumed {
		return message.Run{}, nil, ErrTokenConsumed
	}

	queue := s.pending[ex.nodeID]
	if len(queue) == 0 {
		return message.Run{}, nil, ErrNoPendingTask
	}
	task := queue[0]
	s.pending[ex.nodeID] = queue[1:]

	ex.consumed = true
	ex.taskID = task.GetTaskId()
	return s.runs[ex.runID], task, nil
}

func (s *InMemoryState) StoreTaskRes(token uint64, task *proto.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, exists := s.tokens[token]
	if !exists {
		return ErrInvalidToken
	}
	if !ex.consumed {
		return fmt.Errorf("no task was pulled for this token: %w", ErrInvalidToken)
	}
	if ex.replied {
		return ErrTokenConsumed
	}
	if task.GetReplyToTaskId() != ex.taskID {
		return fmt.Errorf("reply correlates to %q, token exchange was for %q",
			task.GetReplyToTaskId(), ex.taskID)
	}

	task.TaskId = uuid.New().String()
	s.results[ex.taskID] = task
	ex.replied = true
	return nil
}

func (s *InMemoryState) PullTaskRes(ids []string) ([]*proto.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []*proto.Task
	for _, id := range ids {
		if task, exists := s.results[id]; exists {
			results = append(results, task)
			delete(s.results, id)
		}
	}
	return results, nil
}

var _ LinkState = (*InMemoryState)(nil)
