// Package state holds the superlink's view of runs, nodes, and
// in-flight task envelopes.
package state

import (
	"errors"

	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/shared/proto"
)

var (
	// ErrRunNotFound is returned for operations scoped to an unknown run.
	ErrRunNotFound = errors.New("run not found")
	// ErrInvalidToken is returned for a token that was never issued.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenConsumed is returned when a single-use token is reused.
	ErrTokenConsumed = errors.New("token already consumed")
	// ErrNoPendingTask is returned when a worker pulls but nothing is
	// queued for its node.
	ErrNoPendingTask = errors.New("no pending task for node")
)

// LinkState is the superlink's store. Task envelopes are kept in wire
// form; the superlink never inspects payloads.
type LinkState interface {
	// CreateRun registers a run for the given application, returning
	// the existing run id if one was already registered for the same
	// app id and version.
	CreateRun(appID, appVersion string) (int64, error)
	GetRun(runID int64) (message.Run, error)

	// ListRuns returns all registered runs.
	ListRuns() ([]message.Run, error)

	// RegisterNode adds a worker node to a run and issues a fresh
	// single-use exchange token for it.
	RegisterNode(runID int64) (nodeID int64, token uint64, err error)
	GetNodeIDs(runID int64) ([]int64, error)

	// StoreTaskIns enqueues instruction envelopes for their
	// destination nodes, assigning each a message id. Ids are returned
	// in input order.
	StoreTaskIns(tasks []*proto.Task) ([]string, error)

	// ConsumeTaskIns hands out the oldest pending instruction for the
	// node bound to token, consuming the token.
	ConsumeTaskIns(token uint64) (message.Run, *proto.Task, error)

	// StoreTaskRes records the single reply for a consumed token. The
	// reply must correlate to the instruction handed out for it.
	StoreTaskRes(token uint64, task *proto.Task) error

	// PullTaskRes returns and removes the replies available for the
	// given instruction ids.
	PullTaskRes(ids []string) ([]*proto.Task, error)
}
