// fedrun drives one round of task dispatch: create (or simulate) a
// run, wait for worker nodes, broadcast a payload and collect replies.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/fedlink/fedlink/internal/clientapp"
	"github.com/fedlink/fedlink/internal/driver"
	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/message"
	"github.com/fedlink/fedlink/internal/shared/proto"
	"github.com/fedlink/fedlink/internal/simulation"

	_ "github.com/fedlink/fedlink/examples/echo"
	_ "github.com/fedlink/fedlink/examples/vectorsum"
)

const simulatedRunID int64 = 1

func main() {
	var (
		superlinkAddr = flag.String("superlink", "localhost:9091", "superlink address")
		appID         = flag.String("app", "fedlink/echo", "application id")
		appVersion    = flag.String("app-version", "v1.0.0", "application version")
		payload       = flag.String("payload", "", "instruction payload broadcast to every node")
		groupID       = flag.String("group", "round-1", "group id stamped on the batch")
		minNodes      = flag.Int("min-nodes", 1, "nodes to wait for before broadcasting")
		wait          = flag.Duration("wait", 60*time.Second, "how long to wait for nodes to register")
		timeout       = flag.Duration("timeout", 60*time.Second, "how long to wait for replies")
		local         = flag.Int("local", 0, "run in-process with this many simulated nodes")
		logLevel      = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	logger := logging.NewSlogLogger(logging.ParseLevel(*logLevel), "text")
	ctx := context.Background()

	var d driver.Driver
	if *local > 0 {
		run := message.Run{RunID: simulatedRunID, AppID: *appID, AppVersion: *appVersion}
		d = simulation.NewDriver(run, *local, clientapp.Default(), simulation.WithLogger(logger))
		logger.Info("Simulating run in-process", "nodes", *local, "app_id", *appID)
	} else {
		conn, err := grpc.NewClient(*superlinkAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			logger.Fatal("Failed to connect to superlink", "error", err)
		}
		defer conn.Close()
		client := proto.NewDriverServiceClient(conn)

		res, err := client.CreateRun(ctx, &proto.CreateRunRequest{
			AppId:      *appID,
			AppVersion: *appVersion,
		})
		if err != nil {
			logger.Fatal("Failed to create run", "error", err)
		}
		logger.Info("Run ready", "run_id", res.GetRunId(), "app_id", *appID, "app_version", *appVersion)

		d = driver.NewGrpcDriver(res.GetRunId(), *superlinkAddr,
			driver.WithClient(client),
			driver.WithLogger(logger),
		)
	}
	defer d.Close()

	nodeIDs, err := waitForNodes(ctx, d, *minNodes, *wait, logger)
	if err != nil {
		logger.Fatal("Gave up waiting for nodes", "min_nodes", *minNodes, "error", err)
	}
	logger.Info("Broadcasting", "nodes", len(nodeIDs), "group", *groupID)

	msgs := make([]*message.Message, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		msg, err := d.CreateMessage(ctx, []byte(*payload), nodeID, *groupID, 0)
		if err != nil {
			logger.Fatal("Failed to create message", "node_id", nodeID, "error", err)
		}
		msgs = append(msgs, msg)
	}

	replies, err := d.SendAndReceive(ctx, msgs, *timeout)
	if err != nil {
		logger.Fatal("Dispatch failed", "error", err)
	}

	failures := 0
	for _, reply := range replies {
		if reply.HasError() {
			failures++
			logger.Warn("Node reported an error",
				"node_id", reply.Metadata.SrcNodeID,
				"code", reply.Err.Code,
				"reason", reply.Err.Reason,
			)
			continue
		}
		logger.Info("Reply received",
			"node_id", reply.Metadata.SrcNodeID,
			"payload", string(reply.Content),
		)
	}

	logger.Info("Round complete",
		"sent", len(msgs),
		"received", len(replies),
		"failed", failures,
		"missing", len(msgs)-len(replies),
	)
	if len(replies) < len(msgs) {
		os.Exit(1)
	}
}

// waitForNodes polls node registrations until minNodes joined or wait
// elapsed.
func waitForNodes(ctx context.Context, d driver.Driver, minNodes int, wait time.Duration, logger logging.Logger) ([]int64, error) {
	deadline := time.Now().Add(wait)
	for {
		nodeIDs, err := d.GetNodeIDs(ctx)
		if err != nil {
			return nil, err
		}
		if len(nodeIDs) >= minNodes {
			return nodeIDs, nil
		}
		if time.Now().After(deadline) {
			return nodeIDs, context.DeadlineExceeded
		}
		logger.Debug("Waiting for nodes", "registered", len(nodeIDs), "required", minNodes)
		time.Sleep(500 * time.Millisecond)
	}
}
