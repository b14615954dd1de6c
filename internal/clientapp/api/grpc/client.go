// Package grpc implements the worker-side client for the superlink's
// ClientAppIo API.
package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/fedlink/fedlink/internal/shared/config"
	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/shared/proto"
)

type SuperLinkClient struct {
	conn   *grpc.ClientConn
	client proto.ClientAppIoServiceClient

	superlinkAddr string
}

func NewSuperLinkClient(superlinkAddr string, cfg config.ClientGRPCConfig) (*SuperLinkClient, error) {
	conn, err := grpc.NewClient(
		superlinkAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(
			keepalive.ClientParameters{
				Time:                cfg.KeepaliveTime,
				Timeout:             cfg.KeepaliveTimeout,
				PermitWithoutStream: true,
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to superlink: %w", err)
	}

	return &SuperLinkClient{
		conn:          conn,
		client:        proto.NewClientAppIoServiceClient(conn),
		superlinkAddr: superlinkAddr,
	}, nil
}

// RegisterNode joins the run and obtains a node id plus the single-use
// token scoping the next exchange.
func (c *SuperLinkClient) RegisterNode(ctx context.Context, runID int64) (int64, uint64, error) {
	resp, err := c.client.RegisterNode(ctx, &proto.RegisterNodeRequest{RunId: runID})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to register node: %w", err)
	}
	return resp.GetNode().GetNodeId(), resp.GetToken(), nil
}

func (c *SuperLinkClient) PullClientAppInputs(ctx context.Context, token uint64) (message.Run, *message.Message, error) {
	resp, err := c.client.PullClientAppInputs(ctx, &proto.PullClientAppInputsRequest{Token: token})
	if err != nil {
		return message.Run{}, nil, err
	}

	msg, err := message.FromTaskIns(resp.GetTask())
	if err != nil {
		return message.Run{}, nil, err
	}
	return message.RunFromProto(resp.GetRun()), msg, nil
}

func (c *SuperLinkClient) PushClientAppOutputs(ctx context.Context, token uint64, msg *message.Message) error {
	_, err := c.client.PushClientAppOutputs(ctx, &proto.PushClientAppOutputsRequest{
		Token: token,
		Task:  message.ToTaskRes(msg),
	})
	return err
}

func (c *SuperLinkClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
