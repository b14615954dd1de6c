// Package clientapp runs application logic on behalf of a supernode:
// one single-shot, token-scoped pull/execute/push exchange per
// invocation.
package clientapp

import (
	"context"

	"github.com/fedlink/fedlink/internal/shared/message"
)

// ClientApp executes one instruction message and produces the reply.
// The dispatch layer treats both payloads as opaque.
type ClientApp func(ctx context.Context, run message.Run, msg *message.Message) (*message.Message, error)
