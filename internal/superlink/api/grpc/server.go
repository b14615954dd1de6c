package grpc

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"github.com/fedlink/fedlink/internal/shared/config"
	"github.com/fedlink/fedlink/internal/shared/logging"
	"github.com/fedlink/fedlink/internal/shared/proto"
	"github.com/fedlink/fedlink/internal/superlink/state"
)

// Server hosts the DriverService and ClientAppIoService on one listener.
type Server struct {
	addr       string
	grpcServer *grpc.Server
	logger     logging.Logger
}

func NewServer(cfg config.GRPCConfig, linkState state.LinkState, logger logging.Logger) *Server {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             cfg.KeepaliveMinTime,
			PermitWithoutStream: true,
		}),
	)

	proto.RegisterDriverServiceServer(grpcServer, NewDriverService(linkState, logger))
	proto.RegisterClientAppIoServiceServer(grpcServer, NewClientAppIoService(linkState, logger))

	if cfg.EnableReflection {
		reflection.Register(grpcServer)
	}

	return &Server{
		addr:       cfg.Addr,
		grpcServer: grpcServer,
		logger:     logger,
	}
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.logger.Info("Dispatch gRPC server listening", "addr", s.addr)
	return s.grpcServer.Serve(lis)
}

func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}
