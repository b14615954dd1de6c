package message

import (
	"fmt"
	"time"

	"github.com/fedlink/fedlink/internal/shared/proto"
)

// DecodeError reports a wire envelope that violates the dispatch
// protocol, e.g. a reply carrying neither content nor error.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed task envelope: %s", e.Reason)
}

// ToTaskIns converts an outgoing message to its wire envelope.
func ToTaskIns(m *Message) *proto.Task {
	return &proto.Task{
		TaskId:        m.Metadata.MessageID,
		GroupId:       m.Metadata.GroupID,
		RunId:         m.Metadata.RunID,
		SrcNodeId:     m.Metadata.SrcNodeID,
		DstNodeId:     m.Metadata.DstNodeID,
		ReplyToTaskId: m.Metadata.ReplyToMessageID,
		Ttl:           m.Metadata.TTL.Seconds(),
		Payload:       &proto.Task_Content{Content: m.Content},
	}
}

// ToTaskRes converts a worker reply to its wire envelope.
func ToTaskRes(m *Message) *proto.Task {
	t := &proto.Task{
		TaskId:        m.Metadata.MessageID,
		GroupId:       m.Metadata.GroupID,
		RunId:         m.Metadata.RunID,
		SrcNodeId:     m.Metadata.SrcNodeID,
		DstNodeId:     m.Metadata.DstNodeID,
		ReplyToTaskId: m.Metadata.ReplyToMessageID,
		Ttl:           m.Metadata.TTL.Seconds(),
	}
	if m.Err != nil {
		t.Payload = &proto.Task_Error{Error: &proto.Error{Code: m.Err.Code, Reason: m.Err.Reason}}
	} else {
		t.Payload = &proto.Task_Content{Content: m.Content}
	}
	return t
}

// FromTaskIns converts an instruction envelope back to a message.
// Instructions must carry content; an error payload is not a valid
// instruction.
func FromTaskIns(t *proto.Task) (*Message, error) {
	if _, ok := t.GetPayload().(*proto.Task_Content); !ok {
		return nil, &DecodeError{Reason: "instruction without content"}
	}
	m := fromTask(t)
	m.Content = t.GetContent()
	return m, nil
}

// FromTaskRes converts a reply envelope back to a message. A reply must
// carry exactly one of content or error; anything else is a protocol
// violation surfaced as a DecodeError.
func FromTaskRes(t *proto.Task) (*Message, error) {
	m := fromTask(t)
	switch p := t.GetPayload().(type) {
	case *proto.Task_Content:
		m.Content = p.Content
	case *proto.Task_Error:
		m.Err = &Error{Code: p.Error.GetCode(), Reason: p.Error.GetReason()}
	default:
		return nil, &DecodeError{Reason: "reply with neither content nor error"}
	}
	return m, nil
}

func fromTask(t *proto.Task) *Message {
	return &Message{
		Metadata: Metadata{
			RunID:            t.GetRunId(),
			MessageID:        t.GetTaskId(),
			SrcNodeID:        t.GetSrcNodeId(),
			DstNodeID:        t.GetDstNodeId(),
			ReplyToMessageID: t.GetReplyToTaskId(),
			GroupID:          t.GetGroupId(),
			TTL:              time.Duration(t.GetTtl() * float64(time.Second)),
		},
	}
}

// RunFromProto converts a wire run record to the domain type.
func RunFromProto(r *proto.Run) Run {
	return Run{
		RunID:      r.GetRunId(),
		AppID:      r.GetAppId(),
		AppVersion: r.GetAppVersion(),
	}
}

// RunToProto converts a domain run record to the wire type.
func RunToProto(r Run) *proto.Run {
	return &proto.Run{
		RunId:      r.RunID,
		AppId:      r.AppID,
		AppVersion: r.AppVersion,
	}
}
