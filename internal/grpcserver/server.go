package grpcserver

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server wraps a grpc.Server with the standard health service registered.
type Server struct {
	addr   string
	health *health.Server
	Server *grpc.Server
}

// New creates a server for addr. Services are registered on Server before Start.
func New(addr string, opts ...grpc.ServerOption) *Server {
	s := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return &Server{
		addr:   addr,
		health: hs,
		Server: s,
	}
}

// SetServing marks service as serving in the health service.
// The empty name reports overall server health.
func (s *Server) SetServing(service string) {
	s.health.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
}

// Start listens on addr and serves until Stop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener. The listener is closed when Serve returns.
func (s *Server) Serve(lis net.Listener) error {
	return s.Server.Serve(lis)
}

// Stop reports NOT_SERVING to health checks, closes the listeners and drains in-flight calls.
// Safe to call concurrently with Serve.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}
