package message

import (
	"fmt"
	"time"
)

// DefaultTTL is applied to messages created without an explicit TTL.
const DefaultTTL = 12 * time.Hour

// SrcNodeDriver is the src_node_id stamped on driver-originated messages.
const SrcNodeDriver int64 = 0

// Run identifies one distributed execution and the application it runs.
// A Run is immutable once fetched.
type Run struct {
	RunID      int64
	AppID      string
	AppVersion string
}

// Metadata carries the routing and correlation fields of a Message.
// MessageID is assigned by the superlink on push and must be empty before.
type Metadata struct {
	RunID            int64
	MessageID        string
	SrcNodeID        int64
	DstNodeID        int64
	ReplyToMessageID string
	GroupID          string
	TTL              time.Duration
}

// Error is an application-level failure carried inside a reply instead
// of content.
type Error struct {
	Code   int64
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("app error %d: %s", e.Code, e.Reason)
}

// Message is the unit of work and result exchanged between a driver and
// a worker node. The payload is opaque to the dispatch layer. A reply
// carries exactly one of Content or Err.
type Message struct {
	Metadata Metadata
	Content  []byte
	Err      *Error
}

// HasContent reports whether the message carries payload content.
func (m *Message) HasContent() bool {
	return m.Err == nil
}

// HasError reports whether the message carries an application error.
func (m *Message) HasError() bool {
	return m.Err != nil
}

// CreateReply builds a reply to m carrying content, addressed back to
// the sender and correlated via ReplyToMessageID.
func (m *Message) CreateReply(content []byte) *Message {
	return &Message{
		Metadata: m.replyMetadata(),
		Content:  content,
	}
}

// CreateErrorReply builds a reply to m carrying an application error.
func (m *Message) CreateErrorReply(appErr *Error) *Message {
	return &Message{
		Metadata: m.replyMetadata(),
		Err:      appErr,
	}
}

func (m *Message) replyMetadata() Metadata {
	return Metadata{
		RunID:            m.Metadata.RunID,
		SrcNodeID:        m.Metadata.DstNodeID,
		DstNodeID:        m.Metadata.SrcNodeID,
		ReplyToMessageID: m.Metadata.MessageID,
		GroupID:          m.Metadata.GroupID,
		TTL:              m.Metadata.TTL,
	}
}
