package message

import (
	"errors"
	"testing"
	"time"
)

func instruction() *Message {
	return &Message{
		Metadata: Metadata{
			RunID:     61016,
			MessageID: "msg-1",
			SrcNodeID: SrcNodeDriver,
			DstNodeID: 404,
			GroupID:   "round-1",
			TTL:       DefaultTTL,
		},
		Content: []byte("instruction"),
	}
}

func TestCreateReply_CorrelationAndRouting(t *testing.T) {
	msg := instruction()
	reply := msg.CreateReply([]byte("result"))

	md := reply.Metadata
	if md.ReplyToMessageID != "msg-1" {
		t.Errorf("Expected reply correlated to msg-1, got %q", md.ReplyToMessageID)
	}
	if md.SrcNodeID != 404 || md.DstNodeID != SrcNodeDriver {
		t.Errorf("Expected src/dst swapped, got %d -> %d", md.SrcNodeID, md.DstNodeID)
	}
	if md.MessageID != "" {
		t.Errorf("Reply must not carry a preassigned id, got %q", md.MessageID)
	}
	if md.RunID != 61016 || md.GroupID != "round-1" || md.TTL != DefaultTTL {
		t.Errorf("Run, group and TTL must carry over, got %+v", md)
	}
	if !reply.HasContent() || reply.HasError() {
		t.Errorf("Expected a content reply, got %+v", reply)
	}
}

func TestCreateErrorReply(t *testing.T) {
	msg := instruction()
	reply := msg.CreateErrorReply(&Error{Code: 1, Reason: "boom"})

	if !reply.HasError() || reply.HasContent() {
		t.Fatalf("Expected an error reply, got %+v", reply)
	}
	if reply.Metadata.ReplyToMessageID != "msg-1" {
		t.Errorf("Error reply not correlated: %q", reply.Metadata.ReplyToMessageID)
	}
	if reply.Err.Error() != "app error 1: boom" {
		t.Errorf("Unexpected error string: %q", reply.Err.Error())
	}
}

func TestTaskInsRoundTrip(t *testing.T) {
	msg := instruction()
	msg.Metadata.TTL = 90 * time.Second

	decoded, err := FromTaskIns(ToTaskIns(msg))
	if err != nil {
		t.Fatalf("FromTaskIns failed: %v", err)
	}
	if decoded.Metadata != msg.Metadata {
		t.Errorf("Metadata changed across the wire:\n got %+v\nwant %+v", decoded.Metadata, msg.Metadata)
	}
	if string(decoded.Content) != "instruction" {
		t.Errorf("Content changed across the wire: %q", decoded.Content)
	}
}

func TestFromTaskIns_RejectsErrorPayload(t *testing.T) {
	reply := instruction().CreateErrorReply(&Error{Code: 1, Reason: "boom"})

	_, err := FromTaskIns(ToTaskRes(reply))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected DecodeError, got %v", err)
	}
}

func TestFromTaskRes_ErrorPayload(t *testing.T) {
	reply := instruction().CreateErrorReply(&Error{Code: 2, Reason: "diverged"})

	decoded, err := FromTaskRes(ToTaskRes(reply))
	if err != nil {
		t.Fatalf("FromTaskRes failed: %v", err)
	}
	if !decoded.HasError() {
		t.Fatalf("Expected an error payload, got %+v", decoded)
	}
	if decoded.Err.Code != 2 || decoded.Err.Reason != "diverged" {
		t.Errorf("Unexpected error payload: %+v", decoded.Err)
	}
}

func TestFromTaskRes_EmptyPayload(t *testing.T) {
	envelope := ToTaskRes(instruction().CreateReply(nil))
	envelope.Payload = nil

	_, err := FromTaskRes(envelope)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected DecodeError, got %v", err)
	}
}
